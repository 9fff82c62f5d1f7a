package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	"github.com/noah-isme/lms-api/internal/repository"
)

type pairKey [2]string

// memStore is an in-memory stand-in for Postgres that enforces the same uniqueness guards.
type memStore struct {
	departments map[string]string
	courses     []models.Course
	classes     []models.ClassOffering
	categories  []models.AssignmentCategory
	assignments []models.Assignment
	submissions map[pairKey]*models.Submission
	enrollments map[pairKey]*models.Enrollment
	accounts    map[string]models.UserAccount
	seq         int
}

func newMemStore() *memStore {
	return &memStore{
		departments: map[string]string{},
		submissions: map[pairKey]*models.Submission{},
		enrollments: map[pairKey]*models.Enrollment{},
		accounts:    map[string]models.UserAccount{},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) addDepartment(subject, name string) {
	m.departments[subject] = name
}

func (m *memStore) addAccount(uid string, role models.UserRole, department string) {
	account := models.UserAccount{
		Person: models.Person{UID: uid, FirstName: "F" + uid, LastName: "L" + uid, DOB: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		Role:   role,
	}
	if department != "" {
		name := m.departments[department]
		account.DepartmentName = &name
	}
	m.accounts[uid] = account
}

func (m *memStore) course(subject string, number int) *models.Course {
	for i := range m.courses {
		if m.courses[i].Subject == subject && m.courses[i].Number == number {
			return &m.courses[i]
		}
	}
	return nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeDepartments struct{ *memStore }

func (f fakeDepartments) FindBySubject(ctx context.Context, subject string) (*models.Department, error) {
	name, ok := f.departments[subject]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.Department{Subject: subject, Name: name}, nil
}

func (f fakeDepartments) List(ctx context.Context) ([]dto.DepartmentItem, error) {
	var items []dto.DepartmentItem
	for subject, name := range f.departments {
		items = append(items, dto.DepartmentItem{Subject: subject, Name: name})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Subject < items[j].Subject })
	return items, nil
}

func (f fakeDepartments) Catalog(ctx context.Context) ([]dto.CatalogRow, error) {
	departments, _ := f.List(ctx)
	var rows []dto.CatalogRow
	for _, d := range departments {
		var courses []models.Course
		for _, c := range f.courses {
			if c.Subject == d.Subject {
				courses = append(courses, c)
			}
		}
		sort.Slice(courses, func(i, j int) bool { return courses[i].Number < courses[j].Number })
		if len(courses) == 0 {
			rows = append(rows, dto.CatalogRow{Subject: d.Subject, Department: d.Name})
			continue
		}
		for _, c := range courses {
			number, name := c.Number, c.Name
			rows = append(rows, dto.CatalogRow{Subject: d.Subject, Department: d.Name, CourseNumber: &number, CourseName: &name})
		}
	}
	return rows, nil
}

type fakeCourses struct{ *memStore }

func (f fakeCourses) Exists(ctx context.Context, subject string, number int) (bool, error) {
	return f.course(subject, number) != nil, nil
}

func (f fakeCourses) FindByNumber(ctx context.Context, subject string, number int) (*models.Course, error) {
	if c := f.course(subject, number); c != nil {
		out := *c
		return &out, nil
	}
	return nil, sql.ErrNoRows
}

func (f fakeCourses) Create(ctx context.Context, course *models.Course) error {
	if f.course(course.Subject, course.Number) != nil {
		return fmt.Errorf("create course: %w", repository.ErrDuplicate)
	}
	course.ID = f.nextID("course")
	f.courses = append(f.courses, *course)
	return nil
}

func (f fakeCourses) ListBySubject(ctx context.Context, subject string) ([]dto.CourseItem, error) {
	var items []dto.CourseItem
	for _, c := range f.courses {
		if c.Subject == subject {
			items = append(items, dto.CourseItem{Number: c.Number, Name: c.Name})
		}
	}
	return items, nil
}

type fakeClasses struct{ *memStore }

func (f fakeClasses) FindByKey(ctx context.Context, key models.ClassKey) (*models.ClassOffering, error) {
	course := f.course(key.Subject, key.Number)
	if course == nil {
		return nil, sql.ErrNoRows
	}
	for _, c := range f.classes {
		if c.CourseID == course.ID && c.Semester == key.Semester() {
			out := c
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f fakeClasses) ExistsForCourse(ctx context.Context, courseID string, semester models.Semester) (bool, error) {
	for _, c := range f.classes {
		if c.CourseID == courseID && c.Semester == semester {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeClasses) ListInRoom(ctx context.Context, semester models.Semester, location string) ([]models.ClassOffering, error) {
	var out []models.ClassOffering
	for _, c := range f.classes {
		if c.Semester == semester && c.Location == location {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f fakeClasses) Create(ctx context.Context, offering *models.ClassOffering) error {
	for _, c := range f.classes {
		if (c.CourseID == offering.CourseID && c.Semester == offering.Semester) || c.Overlaps(*offering) {
			return fmt.Errorf("create class offering: %w", repository.ErrDuplicate)
		}
	}
	offering.ID = f.nextID("class")
	f.classes = append(f.classes, *offering)
	return nil
}

func (f fakeClasses) ListForCourse(ctx context.Context, courseID string) ([]dto.ClassOfferingItem, error) {
	var items []dto.ClassOfferingItem
	for _, c := range f.classes {
		if c.CourseID == courseID {
			p := f.accounts[c.InstructorID]
			items = append(items, dto.ClassOfferingItem{
				Season: c.Semester.Season, Year: c.Semester.Year, Location: c.Location,
				Start: c.Start, End: c.End, FirstName: p.FirstName, LastName: p.LastName, Semester: c.Semester,
			})
		}
	}
	return items, nil
}

func (f fakeClasses) ListByInstructor(ctx context.Context, instructorID string) ([]dto.ProfessorClassItem, error) {
	var items []dto.ProfessorClassItem
	for _, c := range f.classes {
		if c.InstructorID != instructorID {
			continue
		}
		for _, course := range f.courses {
			if course.ID == c.CourseID {
				items = append(items, dto.ProfessorClassItem{Subject: course.Subject, Number: course.Number, Name: course.Name, Season: c.Semester.Season, Year: c.Semester.Year, Semester: c.Semester})
			}
		}
	}
	return items, nil
}

type fakeCategories struct{ *memStore }

func (f fakeCategories) FindByName(ctx context.Context, classID, name string) (*models.AssignmentCategory, error) {
	for _, c := range f.categories {
		if c.ClassID == classID && c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f fakeCategories) Exists(ctx context.Context, classID, name string) (bool, error) {
	_, err := f.FindByName(ctx, classID, name)
	return err == nil, nil
}

func (f fakeCategories) Create(ctx context.Context, category *models.AssignmentCategory) error {
	if ok, _ := f.Exists(ctx, category.ClassID, category.Name); ok {
		return fmt.Errorf("create assignment category: %w", repository.ErrDuplicate)
	}
	category.ID = f.nextID("cat")
	f.categories = append(f.categories, *category)
	return nil
}

func (f fakeCategories) ListForClass(ctx context.Context, classID string) ([]dto.CategoryItem, error) {
	var items []dto.CategoryItem
	for _, c := range f.categories {
		if c.ClassID == classID {
			items = append(items, dto.CategoryItem{Name: c.Name, Weight: c.Weight})
		}
	}
	return items, nil
}

type fakeAssignments struct{ *memStore }

func (f fakeAssignments) FindByName(ctx context.Context, categoryID, name string) (*models.Assignment, error) {
	for _, a := range f.assignments {
		if a.CategoryID == categoryID && a.Name == name {
			out := a
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f fakeAssignments) Exists(ctx context.Context, categoryID, name string) (bool, error) {
	_, err := f.FindByName(ctx, categoryID, name)
	return err == nil, nil
}

func (f fakeAssignments) Create(ctx context.Context, assignment *models.Assignment) error {
	if ok, _ := f.Exists(ctx, assignment.CategoryID, assignment.Name); ok {
		return fmt.Errorf("create assignment: %w", repository.ErrDuplicate)
	}
	assignment.ID = f.nextID("asg")
	f.assignments = append(f.assignments, *assignment)
	return nil
}

func (f fakeAssignments) ListForClass(ctx context.Context, classID, category string) ([]dto.AssignmentItem, error) {
	return nil, nil
}

func (f fakeAssignments) ListForStudent(ctx context.Context, classID, studentID string) ([]dto.StudentAssignmentItem, error) {
	var items []dto.StudentAssignmentItem
	for _, c := range f.categories {
		if c.ClassID != classID {
			continue
		}
		for _, a := range f.assignments {
			if a.CategoryID != c.ID {
				continue
			}
			item := dto.StudentAssignmentItem{Name: a.Name, Category: c.Name, Due: a.DueAt}
			if sub, ok := f.submissions[pairKey{a.ID, studentID}]; ok {
				item.Score = sub.Score
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (f fakeAssignments) ScoreSheet(ctx context.Context, classID, studentID string) ([]models.ScoreSheetRow, error) {
	var rows []models.ScoreSheetRow
	for _, c := range f.categories {
		if c.ClassID != classID {
			continue
		}
		found := false
		for _, a := range f.assignments {
			if a.CategoryID != c.ID {
				continue
			}
			found = true
			id, points := a.ID, a.MaxPoints
			row := models.ScoreSheetRow{CategoryID: c.ID, CategoryName: c.Name, Weight: c.Weight, AssignmentID: &id, MaxPoints: &points}
			if sub, ok := f.submissions[pairKey{a.ID, studentID}]; ok {
				row.Score = sub.Score
			}
			rows = append(rows, row)
		}
		if !found {
			rows = append(rows, models.ScoreSheetRow{CategoryID: c.ID, CategoryName: c.Name, Weight: c.Weight})
		}
	}
	return rows, nil
}

type fakeSubmissions struct{ *memStore }

func (f fakeSubmissions) Find(ctx context.Context, assignmentID, studentID string) (*models.Submission, error) {
	if sub, ok := f.submissions[pairKey{assignmentID, studentID}]; ok {
		out := *sub
		return &out, nil
	}
	return nil, sql.ErrNoRows
}

func (f fakeSubmissions) Upsert(ctx context.Context, submission *models.Submission) (bool, error) {
	key := pairKey{submission.AssignmentID, submission.StudentID}
	if existing, ok := f.submissions[key]; ok {
		existing.Contents = submission.Contents
		existing.SubmittedAt = submission.SubmittedAt
		return false, nil
	}
	out := *submission
	out.Score = nil
	f.submissions[key] = &out
	return true, nil
}

func (f fakeSubmissions) SetScore(ctx context.Context, assignmentID, studentID string, score int) error {
	sub, ok := f.submissions[pairKey{assignmentID, studentID}]
	if !ok {
		return sql.ErrNoRows
	}
	sub.Score = &score
	return nil
}

func (f fakeSubmissions) ListForAssignment(ctx context.Context, assignmentID string) ([]dto.SubmissionItem, error) {
	var items []dto.SubmissionItem
	for key, sub := range f.submissions {
		if key[0] != assignmentID {
			continue
		}
		a := f.accounts[sub.StudentID]
		items = append(items, dto.SubmissionItem{FirstName: a.FirstName, LastName: a.LastName, UID: a.UID, Time: sub.SubmittedAt, Score: sub.Score})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UID < items[j].UID })
	return items, nil
}

type fakeEnrollments struct{ *memStore }

func (f fakeEnrollments) Exists(ctx context.Context, studentID, classID string) (bool, error) {
	_, ok := f.enrollments[pairKey{studentID, classID}]
	return ok, nil
}

func (f fakeEnrollments) Create(ctx context.Context, enrollment *models.Enrollment) error {
	key := pairKey{enrollment.StudentID, enrollment.ClassID}
	if _, ok := f.enrollments[key]; ok {
		return fmt.Errorf("create enrollment: %w", repository.ErrDuplicate)
	}
	out := *enrollment
	f.enrollments[key] = &out
	return nil
}

func (f fakeEnrollments) SetGrade(ctx context.Context, studentID, classID string, grade *string) error {
	e, ok := f.enrollments[pairKey{studentID, classID}]
	if !ok {
		return sql.ErrNoRows
	}
	e.Grade = grade
	return nil
}

func (f fakeEnrollments) GradesForStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for key, e := range f.enrollments {
		if key[0] == studentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f fakeEnrollments) GradedStudents(ctx context.Context, classID string) ([]string, error) {
	var out []string
	for key, e := range f.enrollments {
		if key[1] == classID && e.Grade != nil {
			out = append(out, key[0])
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f fakeEnrollments) Roster(ctx context.Context, classID string) ([]dto.RosterItem, error) {
	var items []dto.RosterItem
	for key, e := range f.enrollments {
		if key[1] != classID {
			continue
		}
		a := f.accounts[e.StudentID]
		grade := models.UngradedMark
		if e.Grade != nil {
			grade = *e.Grade
		}
		items = append(items, dto.RosterItem{FirstName: a.FirstName, LastName: a.LastName, UID: a.UID, DOB: a.DOB, Grade: grade})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UID < items[j].UID })
	return items, nil
}

func (f fakeEnrollments) ListForStudent(ctx context.Context, studentID string) ([]dto.StudentClassItem, error) {
	var items []dto.StudentClassItem
	for _, c := range f.classes {
		e, ok := f.enrollments[pairKey{studentID, c.ID}]
		if !ok {
			continue
		}
		grade := models.UngradedMark
		if e.Grade != nil {
			grade = *e.Grade
		}
		for _, course := range f.courses {
			if course.ID == c.CourseID {
				items = append(items, dto.StudentClassItem{Subject: course.Subject, Number: course.Number, Name: course.Name, Season: c.Semester.Season, Year: c.Semester.Year, Grade: grade, Semester: c.Semester})
			}
		}
	}
	return items, nil
}

type fakeUsers struct{ *memStore }

func (f fakeUsers) FindAccount(ctx context.Context, uid string) (*models.UserAccount, error) {
	a, ok := f.accounts[uid]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &a, nil
}

func (f fakeUsers) ListProfessors(ctx context.Context, subject string) ([]dto.ProfessorItem, error) {
	department := f.departments[subject]
	var items []dto.ProfessorItem
	for _, a := range f.accounts {
		if a.Role == models.RoleProfessor && a.DepartmentName != nil && *a.DepartmentName == department {
			items = append(items, dto.ProfessorItem{LastName: a.LastName, FirstName: a.FirstName, UID: a.UID})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UID < items[j].UID })
	return items, nil
}

func (f fakeUsers) ProfessorExists(ctx context.Context, uid string) (bool, error) {
	a, ok := f.accounts[uid]
	return ok && a.Role == models.RoleProfessor, nil
}

func (f fakeUsers) StudentExists(ctx context.Context, uid string) (bool, error) {
	a, ok := f.accounts[uid]
	return ok && a.Role == models.RoleStudent, nil
}

// lmsFixture wires every service against one memStore.
type lmsFixture struct {
	store       *memStore
	tx          *fakeTx
	catalog     *CatalogService
	scheduling  *SchedulingService
	enrollments *EnrollmentService
	assignments *AssignmentService
	grading     *GradingService
}

func newFixture() *lmsFixture {
	store := newMemStore()
	store.addDepartment("CS", "Computer Science")
	store.addAccount("u0000001", models.RoleProfessor, "CS")
	store.addAccount("u0000002", models.RoleStudent, "CS")
	store.addAccount("u0000003", models.RoleStudent, "CS")
	store.addAccount("u0000009", models.RoleAdministrator, "")

	tx := &fakeTx{}
	users := fakeUsers{store}
	classes := fakeClasses{store}
	grading := NewGradingService(classes, fakeAssignments{store}, fakeEnrollments{store}, users, nil)

	return &lmsFixture{
		store: store,
		tx:    tx,
		catalog: NewCatalogService(CatalogRepositories{
			Departments: fakeDepartments{store},
			Courses:     fakeCourses{store},
			Classes:     classes,
			Categories:  fakeCategories{store},
			Assignments: fakeAssignments{store},
			Submissions: fakeSubmissions{store},
			Enrollments: fakeEnrollments{store},
			Users:       users,
		}, nil, nil),
		scheduling:  NewSchedulingService(tx, fakeDepartments{store}, fakeCourses{store}, classes, users, nil, nil, nil, nil),
		enrollments: NewEnrollmentService(tx, fakeEnrollments{store}, classes, users, nil, nil, nil),
		assignments: NewAssignmentService(tx, classes, fakeCategories{store}, fakeAssignments{store}, fakeSubmissions{store}, users, grading,
			AssignmentOptions{AutoRecalculate: true}, nil, nil, nil),
		grading: grading,
	}
}

var fall2024 = dto.ClassRef{Subject: "CS", Number: 5530, Season: "Fall", Year: 2024}

func clock(hour, minute int) models.ClockTime {
	return models.ClockTime{Hour: hour, Minute: minute}
}

func (f *lmsFixture) mustCourse() {
	if f.store.course("CS", 5530) == nil {
		_, _ = f.scheduling.CreateCourse(context.Background(), dto.CreateCourseRequest{Subject: "CS", Number: 5530, Name: "Database Systems"})
	}
}

func (f *lmsFixture) offering(ref dto.ClassRef, start, end models.ClockTime, location string) (*dto.Result, error) {
	return f.scheduling.CreateClassOffering(context.Background(), dto.CreateClassOfferingRequest{
		Subject:      ref.Subject,
		Number:       ref.Number,
		Season:       ref.Season,
		Year:         ref.Year,
		Start:        start,
		End:          end,
		Location:     location,
		InstructorID: "u0000001",
	})
}
