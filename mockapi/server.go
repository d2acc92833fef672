package mockapi

import (
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Server is the mock platform API
type Server struct {
	app       *fiber.App
	db        *gorm.DB
	jwtKey    string
	saltRound int
}

// Options tune the server; zero values get sensible dev defaults
type Options struct {
	JWTKey    string
	SaltRound int
	Quiet     bool // drop the request logger, used by tests
}

// New builds a fully migrated and seeded server
func New(opts Options) (*Server, error) {
	if opts.JWTKey == "" {
		opts.JWTKey = "mock-dev-secret"
	}
	if opts.SaltRound == 0 {
		opts.SaltRound = 10
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}
	if err := seedCourses(db); err != nil {
		return nil, err
	}

	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: opts.Quiet}),
		db:        db,
		jwtKey:    opts.JWTKey,
		saltRound: opts.SaltRound,
	}

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if !opts.Quiet {
		s.app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	s.routes()
	return s, nil
}

// routes wires the endpoint surface the client consumes
func (s *Server) routes() {
	auth := s.app.Group("/auth")
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)
	auth.Get("/profile", s.requireAuth, s.currentProfile)

	students := s.app.Group("/students", s.requireAuth)
	students.Get("/:id", s.getStudent)
	students.Put("/:id", s.updateStudent)

	courses := s.app.Group("/courses", s.requireAuth)
	courses.Get("/", s.listCourses)
	courses.Get("/:id", s.getCourse)
	courses.Post("/:id/enroll", s.enroll)
	courses.Put("/:id/progress", s.updateProgress)
}

// Listen serves on the given address until the listener closes
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Start binds an ephemeral port and serves in the background, returning
// the base URL. Tests use this to point a real client at the mock.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	go func() {
		_ = s.app.Listener(ln)
	}()
	return "http://" + ln.Addr().String(), nil
}

// Shutdown stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
