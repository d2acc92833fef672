package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/config"
	"github.com/meharahmadft6/educonnect/course"
	"github.com/meharahmadft6/educonnect/dashboard"
	"github.com/meharahmadft6/educonnect/forms"
	"github.com/meharahmadft6/educonnect/models"
	"github.com/meharahmadft6/educonnect/session"
	"github.com/meharahmadft6/educonnect/ui"
)

var readPasswordFunc = term.ReadPassword // mockable

type cli struct {
	in     *bufio.Reader
	client *api.Client
	store  *session.Store
}

func main() {
	config.LoadConfig()

	store, err := session.Load(config.AppConfig.SessionFile)
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}

	app := &cli{
		in:     bufio.NewReader(os.Stdin),
		client: api.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.RequestTimeout, store),
		store:  store,
	}
	app.run()
}

func (c *cli) run() {
	fmt.Println("Welcome to EduConnect")
	fmt.Println("Connecting students and teachers for a better learning experience")

	for {
		if c.store.Authenticated() {
			if !c.dashboard() {
				return
			}
			continue
		}

		fmt.Println("\n[1] Login  [2] Register  [q] Quit")
		switch c.prompt("> ") {
		case "1":
			c.login()
		case "2":
			c.register()
		case "q":
			return
		}
	}
}

func (c *cli) login() {
	f := forms.NewLoginForm(c.client, c.store)
	f.Email = c.prompt("Email: ")
	f.Password = c.promptPassword("Password: ")

	f.Submit()
	c.printFormResult(&f.Form, "Logged in.")
}

func (c *cli) register() {
	fmt.Println("\nJoin EduConnect: select your role")
	fmt.Println("[1] Student - join as a learner")
	fmt.Println("[2] Teacher - join as an educator")

	switch c.prompt("> ") {
	case "1":
		c.registerStudent()
	case "2":
		c.registerTeacher()
	}
}

func (c *cli) registerStudent() {
	f := forms.NewStudentRegisterForm(c.client, c.store)
	f.Username = c.prompt("Username: ")
	f.Email = c.prompt("Email: ")
	f.Password = c.promptPassword("Password: ")
	f.FirstName = c.prompt("First name: ")
	f.LastName = c.prompt("Last name: ")
	f.GradeLevel = c.promptInt("Grade level (1-12): ")

	f.Submit()
	c.printFormResult(&f.Form, "Registered. Welcome aboard!")
}

func (c *cli) registerTeacher() {
	f := forms.NewTeacherRegisterForm(c.client, c.store)
	f.Username = c.prompt("Username: ")
	f.Email = c.prompt("Email: ")
	f.Password = c.promptPassword("Password: ")
	f.FirstName = c.prompt("First name: ")
	f.LastName = c.prompt("Last name: ")
	f.SubjectSpecialty = c.prompt("Subject specialty: ")
	f.YearsOfExperience = c.promptInt("Years of experience: ")

	f.Submit()
	c.printFormResult(&f.Form, "Registered. Welcome aboard!")
}

// dashboard runs the signed-in screens. It returns false only when the
// user chose to quit; logout and back both return true so the run loop
// shows the next screen.
func (c *cli) dashboard() bool {
	userCtx := session.NewUserContext(c.client, c.store)
	userCtx.Load()

	profile := userCtx.Profile()
	if profile == nil {
		if err := userCtx.Err(); err != nil && !api.IsAuth(err) {
			// Transient failure: keep the session so a retry can use it
			fmt.Println("Could not load your profile:", errMessage(err))
			return c.prompt("[r] Retry, anything else to quit: ") == "r"
		}
		// Stale or rejected token: back to login
		fmt.Println("Your session has expired. Please log in again.")
		_ = c.store.Clear()
		return true
	}

	shell := dashboard.NewShell()
	coursesSection := dashboard.NewCoursesSection(c.client)
	teachersSection := dashboard.NewTeachersSection()
	chatsSection := dashboard.NewChatsSection()

	for {
		fmt.Printf("\n-- EduSphere | %s --\n", profile.FullName())
		for i, tab := range dashboard.Tabs {
			marker := " "
			if tab == shell.Active() {
				marker = "*"
			}
			fmt.Printf(" [%d]%s %s", i+1, marker, tab.Label())
		}
		fmt.Println("\n [l] Logout  [b] Back")

		choice := c.prompt("> ")
		switch choice {
		case "l":
			if err := c.store.Clear(); err != nil {
				fmt.Println("Logout failed:", err)
				continue
			}
			fmt.Println("Logged out.")
			return true
		case "b":
			return true
		default:
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(dashboard.Tabs) {
				continue
			}
			shell.SetActive(dashboard.Tabs[idx-1])
		}

		switch shell.Active() {
		case dashboard.TabProfile:
			c.profileSection(userCtx)
			profile = userCtx.Profile()
		case dashboard.TabCourses:
			c.coursesSection(coursesSection, profile)
		case dashboard.TabTeachers:
			c.teachersSection(teachersSection)
		case dashboard.TabChats:
			c.chatsSection(chatsSection)
		}
	}
}

func (c *cli) profileSection(userCtx *session.UserContext) {
	profile := userCtx.Profile()

	fmt.Printf("\n%s's Profile\n", profile.FullName())
	if profile.User != nil {
		fmt.Println("  Username:", profile.User.Username)
		fmt.Println("  Email:   ", profile.User.Email)
	}
	if profile.GradeLevel > 0 {
		fmt.Println("  Grade Level:", profile.GradeLevel)
	}
	if profile.SubjectSpecialty != "" {
		fmt.Println("  Subject Specialty:", profile.SubjectSpecialty)
	}
	if profile.YearsOfExperience > 0 {
		fmt.Println("  Years of Experience:", profile.YearsOfExperience)
	}

	if c.prompt("[e] Edit profile, anything else to go back: ") != "e" {
		return
	}

	f := forms.NewProfileEditForm(c.client, profile)
	if v := c.prompt(fmt.Sprintf("First name [%s]: ", f.FirstName)); v != "" {
		f.FirstName = v
	}
	if v := c.prompt(fmt.Sprintf("Last name [%s]: ", f.LastName)); v != "" {
		f.LastName = v
	}
	if v := c.prompt(fmt.Sprintf("Grade level [%d]: ", f.GradeLevel)); v != "" {
		if grade, err := strconv.Atoi(v); err == nil {
			f.GradeLevel = grade
		}
	}
	if path := c.prompt("Avatar image path (blank to keep): "); path != "" {
		file, err := os.Open(path)
		if err != nil {
			fmt.Println("Cannot read image:", err)
			return
		}
		defer file.Close()
		f.AvatarName = file.Name()
		f.Avatar = file
	}

	f.Submit()
	c.printFormResult(&f.Form, "Profile updated!")
	userCtx.ApplyUpdate(f.Updated())
}

func (c *cli) coursesSection(section *dashboard.CoursesSection, profile *models.StudentProfile) {
	if section.Loading() {
		if err := section.Load(); err != nil {
			fmt.Println("Failed to load courses:", errMessage(err))
			return
		}
	}

	for {
		courses := section.Courses()
		fmt.Println("\nYour Courses")
		if len(courses) == 0 {
			fmt.Println("  Nothing here for this filter.")
		}
		for i, crs := range courses {
			fmt.Println(ui.CourseCard(i+1, crs, section.Enrolling(crs.ID)))
		}
		fmt.Println("[f] Filter  [e N] Enroll in course N  [o N] Open course N  [b] Back")

		fields := strings.Fields(c.prompt("> "))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "b":
			return
		case "f":
			fmt.Println("Filters: All, In Progress, Completed, New")
			section.SetFilter(dashboard.Filter(c.prompt("Filter: ")))
		case "e", "o":
			if len(fields) < 2 {
				continue
			}
			idx, err := strconv.Atoi(fields[1])
			if err != nil || idx < 1 || idx > len(courses) {
				continue
			}
			selected := courses[idx-1]
			if fields[0] == "e" {
				if err := section.Enroll(selected.ID, profile.ID); err != nil {
					fmt.Println("Enrollment failed:", errMessage(err))
				} else {
					fmt.Println("Enrolled successfully!")
				}
			} else {
				c.coursePlayer(selected.ID)
			}
		}
	}
}

func (c *cli) coursePlayer(courseID string) {
	engine := course.NewEngine(c.client, c.store.UserID())
	if err := engine.Load(courseID); err != nil {
		// Recoverable: fall back to the course list
		fmt.Println("Failed to load course:", errMessage(err))
		return
	}

	for {
		crs := engine.Course()
		fmt.Printf("\n== %s ==\n", crs.Title)
		fmt.Println(ui.ProgressBar(engine.Progress(), 20))
		for i, m := range crs.Materials {
			current := engine.Current() != nil && engine.Current().ID == m.ID
			fmt.Println(ui.MaterialRow(i+1, m, engine.IsCompleted(m.ID), current))
		}
		fmt.Println()
		fmt.Println(ui.MaterialBody(engine.Current()))

		if cur := engine.Current(); cur != nil && cur.Type == models.MaterialQuiz && cur.Quiz != nil {
			c.quiz(engine)
			continue
		}

		fmt.Println("\n[N] Jump to material N  [c] Mark as complete  [b] Back")
		choice := c.prompt("> ")
		switch choice {
		case "b":
			return
		case "c":
			if err := engine.CompleteCurrent(); err != nil {
				fmt.Println("Error updating progress:", errMessage(err))
			} else {
				fmt.Println("Great job! Material completed.")
			}
		default:
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(crs.Materials) {
				continue
			}
			engine.Select(&crs.Materials[idx-1])
		}
	}
}

func (c *cli) quiz(engine *course.Engine) {
	quiz := engine.Current().Quiz
	for {
		fmt.Println()
		for i, q := range quiz.Questions {
			selected, ok := engine.Answer(i)
			fmt.Println(ui.QuizQuestion(i, q, selected, ok))
		}
		fmt.Println("[Q O] Pick option O for question Q  [s] Submit quiz  [b] Back")

		fields := strings.Fields(c.prompt("> "))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "b":
			return
		case "s":
			if err := engine.SubmitQuiz(); err != nil {
				fmt.Println("Error submitting quiz:", errMessage(err))
				continue
			}
			fmt.Println("Quiz submitted! Great work.")
			return
		default:
			if len(fields) < 2 {
				continue
			}
			q, err1 := strconv.Atoi(fields[0])
			o, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || q < 1 || q > len(quiz.Questions) {
				continue
			}
			if o < 1 || o > len(quiz.Questions[q-1].Options) {
				continue
			}
			engine.SelectAnswer(q-1, o-1)
		}
	}
}

func (c *cli) teachersSection(section *dashboard.TeachersSection) {
	fmt.Println("\nYour Teachers")
	for _, t := range section.Teachers() {
		presence := "offline"
		if t.Online {
			presence = "online"
		}
		fmt.Printf("  %-16s %-20s %.1f stars, %d courses (%s)\n",
			t.Name, t.Subject, t.Rating, t.Courses, presence)
	}
}

func (c *cli) chatsSection(section *dashboard.ChatsSection) {
	for {
		fmt.Println("\nMessages")
		for _, conv := range section.Conversations() {
			unread := ""
			if conv.Unread > 0 {
				unread = fmt.Sprintf(" (%d unread)", conv.Unread)
			}
			fmt.Printf("  [%d] %s%s\n", conv.ID, conv.Contact, unread)
		}
		fmt.Println("[N] Open thread N  [b] Back")

		choice := c.prompt("> ")
		if choice == "b" {
			return
		}
		id, err := strconv.Atoi(choice)
		if err != nil {
			continue
		}
		section.Open(id)
		conv := section.Active()
		if conv == nil {
			continue
		}

		fmt.Println("\n--", conv.Contact, "--")
		for _, msg := range conv.Messages {
			fmt.Printf("  %s [%s]: %s\n", msg.From, msg.SentAt.Format("15:04"), msg.Body)
		}
		if body := c.prompt("Reply (blank to skip): "); body != "" {
			section.Send(body)
		}
	}
}

func (c *cli) printFormResult(f *forms.Form, successMsg string) {
	switch f.State() {
	case forms.StateSuccess:
		fmt.Println(successMsg)
	case forms.StateFailure:
		fmt.Println("Error:", f.SubmitError())
	default:
		for field, msg := range f.FieldErrors() {
			fmt.Printf("  %s: %s\n", field, msg)
		}
	}
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *cli) promptInt(label string) int {
	v, _ := strconv.Atoi(c.prompt(label))
	return v
}

func (c *cli) promptPassword(label string) string {
	fmt.Print(label)
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		// Not a terminal; fall back to a plain read
		return c.prompt("")
	}
	return string(pwd)
}

func errMessage(err error) string {
	if apiErr, ok := err.(*api.Error); ok {
		return apiErr.MessageOr("Please try again later")
	}
	return err.Error()
}
