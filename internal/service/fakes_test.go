package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cyberassess/internal/model"
)

// In-memory repository fakes. They mirror the MongoDB repositories' observable
// behavior: not-found reads return (nil, nil), creates assign ids and sorted
// reads follow the same (order, id) rules.

type fakeCategoryRepo struct {
	categories []*model.Category
	nextID     int
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *model.Category) (string, error) {
	f.nextID++
	category.ID = fmt.Sprintf("cat%d", f.nextID)
	f.categories = append(f.categories, category)
	return category.ID, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*model.Category, error) {
	out := append([]*model.Category(nil), f.categories...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type fakeQuestionRepo struct {
	questions []*model.Question
	nextID    int
}

func (f *fakeQuestionRepo) Create(_ context.Context, question *model.Question) (string, error) {
	f.nextID++
	question.ID = fmt.Sprintf("q%02d", f.nextID)
	f.questions = append(f.questions, question)
	return question.ID, nil
}

func (f *fakeQuestionRepo) GetByID(_ context.Context, id string) (*model.Question, error) {
	for _, q := range f.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) GetByCategoryAndText(_ context.Context, categoryID, text string) (*model.Question, error) {
	for _, q := range f.questions {
		if q.CategoryID == categoryID && q.Text == text {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) List(_ context.Context, categoryID string) ([]*model.Question, error) {
	return f.sorted(categoryID), nil
}

func (f *fakeQuestionRepo) FirstUnanswered(_ context.Context, categoryID string, answeredIDs []string) (*model.Question, error) {
	answered := map[string]bool{}
	for _, id := range answeredIDs {
		answered[id] = true
	}
	for _, q := range f.sorted(categoryID) {
		if !answered[q.ID] {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) Count(_ context.Context, categoryID string) (int64, error) {
	return int64(len(f.sorted(categoryID))), nil
}

func (f *fakeQuestionRepo) UpdateOrder(_ context.Context, questionID, categoryID string, order int) error {
	for _, q := range f.questions {
		if q.ID == questionID && q.CategoryID == categoryID {
			q.Order = order
		}
	}
	return nil
}

func (f *fakeQuestionRepo) sorted(categoryID string) []*model.Question {
	var out []*model.Question
	for _, q := range f.questions {
		if categoryID == "" || q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type fakeInputRepo struct {
	inputs []*model.StandardizedInput
	nextID int
}

func (f *fakeInputRepo) GetByID(_ context.Context, id string) (*model.StandardizedInput, error) {
	for _, in := range f.inputs {
		if in.ID == id {
			return in, nil
		}
	}
	return nil, nil
}

func (f *fakeInputRepo) GetByText(_ context.Context, text string) (*model.StandardizedInput, error) {
	for _, in := range f.inputs {
		if in.Text == text {
			return in, nil
		}
	}
	return nil, nil
}

func (f *fakeInputRepo) GetOrCreate(_ context.Context, text, description string) (*model.StandardizedInput, error) {
	for _, in := range f.inputs {
		if in.Text == text {
			return in, nil
		}
	}
	f.nextID++
	in := &model.StandardizedInput{
		ID:          fmt.Sprintf("in%d", f.nextID),
		Text:        text,
		Description: description,
	}
	f.inputs = append(f.inputs, in)
	return in, nil
}

func (f *fakeInputRepo) List(_ context.Context) ([]*model.StandardizedInput, error) {
	return append([]*model.StandardizedInput(nil), f.inputs...), nil
}

type fakeOptionRepo struct {
	links  []*model.QuestionOption
	nextID int
}

func (f *fakeOptionRepo) Upsert(_ context.Context, link *model.QuestionOption) error {
	for _, existing := range f.links {
		if existing.QuestionID == link.QuestionID && existing.InputID == link.InputID {
			existing.ScoreValue = link.ScoreValue
			existing.Preferred = link.Preferred
			return nil
		}
	}
	f.nextID++
	link.ID = fmt.Sprintf("opt%d", f.nextID)
	f.links = append(f.links, link)
	return nil
}

func (f *fakeOptionRepo) GetByQuestionAndInput(_ context.Context, questionID, inputID string) (*model.QuestionOption, error) {
	for _, l := range f.links {
		if l.QuestionID == questionID && l.InputID == inputID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeOptionRepo) ListByQuestion(_ context.Context, questionID string) ([]*model.QuestionOption, error) {
	var out []*model.QuestionOption
	for _, l := range f.links {
		if l.QuestionID == questionID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers []*model.Customer
	nextID    int
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *model.Customer) (string, error) {
	f.nextID++
	customer.ID = fmt.Sprintf("cust%d", f.nextID)
	f.customers = append(f.customers, customer)
	return customer.ID, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*model.Customer, error) {
	out := append([]*model.Customer(nil), f.customers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []*model.Employee
	nextID    int
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *model.Employee) (string, error) {
	f.nextID++
	employee.ID = fmt.Sprintf("emp%d", f.nextID)
	f.employees = append(f.employees, employee)
	return employee.ID, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (*model.Employee, error) {
	for _, e := range f.employees {
		if e.Username == username {
			return e, nil
		}
	}
	return nil, nil
}

type fakeAssessmentRepo struct {
	assessments []*model.Assessment
	nextID      int
}

func (f *fakeAssessmentRepo) GetOrCreateInProgress(_ context.Context, customerID, employeeID string) (*model.Assessment, bool, error) {
	for _, a := range f.assessments {
		if a.CustomerID == customerID && a.EmployeeID == employeeID && a.Status == model.AssessmentStatusInProgress {
			return a, true, nil
		}
	}
	f.nextID++
	a := &model.Assessment{
		ID:          fmt.Sprintf("asmt%d", f.nextID),
		CustomerID:  customerID,
		EmployeeID:  employeeID,
		Status:      model.AssessmentStatusInProgress,
		DateStarted: time.Now(),
	}
	f.assessments = append(f.assessments, a)
	return a, false, nil
}

func (f *fakeAssessmentRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	for _, a := range f.assessments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentRepo) MarkCompleted(_ context.Context, id string, completedAt time.Time) error {
	for _, a := range f.assessments {
		if a.ID == id && a.Status == model.AssessmentStatusInProgress {
			a.Status = model.AssessmentStatusCompleted
			a.DateCompleted = &completedAt
		}
	}
	return nil
}

type fakeAnswerRepo struct {
	answers []*model.Answer
	nextID  int
}

func (f *fakeAnswerRepo) Upsert(_ context.Context, answer *model.Answer) (*model.Answer, error) {
	for _, existing := range f.answers {
		if existing.AssessmentID == answer.AssessmentID && existing.QuestionID == answer.QuestionID {
			existing.AnswerText = answer.AnswerText
			existing.SelectedInputID = answer.SelectedInputID
			existing.FlagRequired = answer.FlagRequired
			existing.Note = answer.Note
			existing.DateAnswered = time.Now()
			return existing, nil
		}
	}
	f.nextID++
	saved := &model.Answer{
		ID:              fmt.Sprintf("ans%d", f.nextID),
		AssessmentID:    answer.AssessmentID,
		QuestionID:      answer.QuestionID,
		AnswerText:      answer.AnswerText,
		SelectedInputID: answer.SelectedInputID,
		FlagRequired:    answer.FlagRequired,
		Note:            answer.Note,
		DateAnswered:    time.Now(),
	}
	f.answers = append(f.answers, saved)
	return saved, nil
}

func (f *fakeAnswerRepo) GetByAssessment(_ context.Context, assessmentID string) ([]*model.Answer, error) {
	var out []*model.Answer
	for _, a := range f.answers {
		if a.AssessmentID == assessmentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) AnsweredQuestionIDs(_ context.Context, assessmentID string) ([]string, error) {
	var out []string
	for _, a := range f.answers {
		if a.AssessmentID == assessmentID {
			out = append(out, a.QuestionID)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) CountByAssessment(_ context.Context, assessmentID string) (int64, error) {
	var n int64
	for _, a := range f.answers {
		if a.AssessmentID == assessmentID {
			n++
		}
	}
	return n, nil
}

type fakeReportCache struct {
	reports map[string]*model.ScoreReport
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{reports: map[string]*model.ScoreReport{}}
}

func (f *fakeReportCache) Get(_ context.Context, assessmentID string) (*model.ScoreReport, error) {
	return f.reports[assessmentID], nil
}

func (f *fakeReportCache) Set(_ context.Context, report *model.ScoreReport) error {
	f.reports[report.AssessmentID] = report
	return nil
}

func (f *fakeReportCache) Invalidate(_ context.Context, assessmentID string) error {
	delete(f.reports, assessmentID)
	return nil
}

func (f *fakeReportCache) InvalidateAll(_ context.Context) error {
	f.reports = map[string]*model.ScoreReport{}
	return nil
}

type fakeProductRepo struct {
	products []*model.Product
	nextID   int
}

func (f *fakeProductRepo) Create(_ context.Context, product *model.Product) (string, error) {
	f.nextID++
	product.ID = fmt.Sprintf("prod%d", f.nextID)
	f.products = append(f.products, product)
	return product.ID, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
