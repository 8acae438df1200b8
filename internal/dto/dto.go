package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"jobmatrix/internal/model"
	"jobmatrix/internal/service"
	"jobmatrix/internal/storage"
)

const (
	unknownCompany   = "Unknown Company"
	unknownRecruiter = "Unknown recruiter"
)

// UserResponse is the public view of a user. ProfilePhoto is an absolute URL.
type UserResponse struct {
	ID           uint       `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	StreetNo     string     `json:"street_no,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	ZipCode      string     `json:"zip_code,omitempty"`
	Role         model.Role `json:"role"`
	ProfilePhoto string     `json:"profile_photo"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	UserID    uint       `json:"user_id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	Message   string     `json:"message"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileResponse is a user plus its role-specific data.
type ProfileResponse struct {
	User      UserResponse       `json:"user"`
	Admin     *AdminInfo         `json:"admin,omitempty"`
	Applicant *ApplicantInfo     `json:"applicant,omitempty"`
	Recruiter *RecruiterResponse `json:"recruiter,omitempty"`
}

// AdminInfo is the admin extension.
type AdminInfo struct {
	SSN string `json:"ssn"`
}

// ApplicantInfo is the applicant extension with its profile records.
type ApplicantInfo struct {
	Resume         string                   `json:"resume"`
	Skills         []SkillResponse          `json:"skills"`
	WorkExperience []WorkExperienceResponse `json:"work_experience"`
	Education      []EducationResponse      `json:"education"`
}

// RecruiterResponse is the recruiter extension with a company summary.
type RecruiterResponse struct {
	UserID    uint            `json:"user_id"`
	IsActive  bool            `json:"is_active"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date"`
	Company   *CompanySummary `json:"company,omitempty"`
}

// ResumeResponse is returned after a resume upload.
type ResumeResponse struct {
	UserID uint   `json:"user_id"`
	Resume string `json:"resume"`
}

// SkillResponse is one skill.
type SkillResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	YearsOfExperience int    `json:"years_of_experience"`
}

// WorkExperienceResponse is one employment entry.
type WorkExperienceResponse struct {
	ID               uint    `json:"id"`
	JobTitle         string  `json:"job_title"`
	CompanyName      string  `json:"company_name"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
	CurrentlyWorking bool    `json:"currently_working"`
	Description      string  `json:"description"`
}

// EducationResponse is one education entry.
type EducationResponse struct {
	ID                uint             `json:"id"`
	Institution       string           `json:"institution"`
	Degree            string           `json:"degree"`
	FieldOfStudy      string           `json:"field_of_study"`
	StartDate         string           `json:"start_date"`
	EndDate           *string          `json:"end_date"`
	CurrentlyEnrolled bool             `json:"currently_enrolled"`
	GPA               *decimal.Decimal `json:"gpa"`
}

// CompanySummary is the short company form nested in other responses.
type CompanySummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CompanyResponse is a directory entry.
type CompanyResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CompanyRecruiter is a member row on the company detail page.
type CompanyRecruiter struct {
	UserID        uint    `json:"user_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	IsActive      bool    `json:"is_active"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	JobsPosted    int64   `json:"jobs_posted"`
	IsCurrentUser bool    `json:"is_current_user"`
}

// CompanyStats summarises a company.
type CompanyStats struct {
	TotalRecruiters  int   `json:"total_recruiters"`
	ActiveRecruiters int   `json:"active_recruiters"`
	TotalJobs        int64 `json:"total_jobs"`
}

// CompanyDetailResponse is the recruiter-facing company page.
type CompanyDetailResponse struct {
	Company    CompanyResponse    `json:"company"`
	Recruiters []CompanyRecruiter `json:"recruiters"`
	Stats      CompanyStats       `json:"stats"`
}

// JobResponse is a job with its recruiter and company.
type JobResponse struct {
	ID            uint                    `json:"id"`
	Title         string                  `json:"job_title"`
	Description   string                  `json:"job_description"`
	Location      string                  `json:"job_location"`
	Salary        decimal.Decimal         `json:"job_salary"`
	PostedAt      time.Time               `json:"date_posted"`
	RecruiterID   uint                    `json:"recruiter_id"`
	RecruiterName string                  `json:"recruiter_name"`
	Company       CompanySummary          `json:"company"`
	Stats         *model.ApplicationStats `json:"application_stats,omitempty"`
}

// JobListResponse is one page of jobs. CompanyID and CompanyName are set for
// company listings.
type JobListResponse struct {
	CompanyID   *uint         `json:"company_id,omitempty"`
	CompanyName string        `json:"company_name,omitempty"`
	TotalCount  int64         `json:"total_count"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
	Next        *int          `json:"next"`
	Previous    *int          `json:"previous"`
	Results     []JobResponse `json:"results"`
}

// ApplicationResponse is an application with job and applicant summaries.
type ApplicationResponse struct {
	ID               uint                    `json:"id"`
	JobID            uint                    `json:"job_id"`
	JobTitle         string                  `json:"job_title,omitempty"`
	Company          *CompanySummary         `json:"company,omitempty"`
	ApplicantID      uint                    `json:"applicant_id"`
	ApplicantName    string                  `json:"applicant_name,omitempty"`
	ApplicantEmail   string                  `json:"applicant_email,omitempty"`
	Resume           string                  `json:"resume,omitempty"`
	Status           model.ApplicationStatus `json:"status"`
	RecruiterComment string                  `json:"recruiter_comment"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// BookmarkResponse is a saved job.
type BookmarkResponse struct {
	ID        uint         `json:"id"`
	JobID     uint         `json:"job_id"`
	CreatedAt time.Time    `json:"created_at"`
	Job       *JobResponse `json:"job,omitempty"`
}

// ApplicantResponse is a row in the recruiter applicant search.
type ApplicantResponse struct {
	User   UserResponse `json:"user"`
	Resume string       `json:"resume"`
}

// UserListResponse is one page of the admin user listing.
type UserListResponse struct {
	TotalCount  int64          `json:"total_count"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	Results     []UserResponse `json:"results"`
}

// StatsResponse is the admin overview.
type StatsResponse struct {
	TotalUsers           int64                             `json:"total_users"`
	UsersByRole          map[model.Role]int64              `json:"users_by_role"`
	TotalCompanies       int64                             `json:"total_companies"`
	TotalJobs            int64                             `json:"total_jobs"`
	TotalApplications    int64                             `json:"total_applications"`
	ApplicationsByStatus map[model.ApplicationStatus]int64 `json:"applications_by_status"`
}

// BrokenFileResponse is a stored reference with no backing object.
type BrokenFileResponse struct {
	Kind    storage.Kind `json:"kind"`
	OwnerID uint         `json:"owner_id"`
	Path    string       `json:"path"`
}

// Mapper turns models into responses, resolving stored paths to URLs.
type Mapper struct {
	resolver *storage.Resolver
}

// NewMapper creates a Mapper.
func NewMapper(resolver *storage.Resolver) *Mapper {
	return &Mapper{resolver: resolver}
}

func (m *Mapper) User(u *model.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		StreetNo:     u.StreetNo,
		City:         u.City,
		State:        u.State,
		ZipCode:      u.ZipCode,
		Role:         u.Role,
		ProfilePhoto: m.resolver.Resolve(u.ProfilePhoto),
		CreatedAt:    u.CreatedAt,
	}
}

func (m *Mapper) Users(users []model.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = m.User(&users[i])
	}
	return out
}

func (m *Mapper) Login(res *service.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		UserID:    res.User.ID,
		Email:     res.User.Email,
		Role:      res.User.Role,
		Message:   "Login successful",
	}
}

// Profile checks that the stored photo and resume still exist and falls back
// to the placeholder when they do not.
func (m *Mapper) Profile(ctx context.Context, p *service.Profile) ProfileResponse {
	resp := ProfileResponse{User: m.User(p.User)}
	if p.User.ProfilePhoto != "" {
		resp.User.ProfilePhoto = m.resolver.ResolveChecked(ctx, p.User.ProfilePhoto)
	}
	if p.Admin != nil {
		resp.Admin = &AdminInfo{SSN: p.Admin.SSN}
	}
	if p.Recruiter != nil {
		r := m.Recruiter(p.Recruiter)
		resp.Recruiter = &r
	}
	if p.Applicant != nil {
		info := &ApplicantInfo{
			Skills:         m.Skills(p.Applicant.Skills),
			WorkExperience: m.WorkExperiences(p.Applicant.WorkExperience),
			Education:      m.Educations(p.Applicant.Education),
		}
		if p.Applicant.Applicant != nil && p.Applicant.Applicant.Resume != "" {
			info.Resume = m.resolver.ResolveChecked(ctx, p.Applicant.Applicant.Resume)
		}
		resp.Applicant = info
	}
	return resp
}

func (m *Mapper) Recruiter(r *model.Recruiter) RecruiterResponse {
	resp := RecruiterResponse{
		UserID:    r.UserID,
		IsActive:  r.IsActive,
		StartDate: model.FormatDate(r.StartDate),
		EndDate:   model.FormatDatePtr(r.EndDate),
	}
	if r.Company != nil {
		c := m.CompanySummary(r.Company)
		resp.Company = &c
	}
	return resp
}

func (m *Mapper) Resume(a *model.Applicant) ResumeResponse {
	return ResumeResponse{UserID: a.UserID, Resume: m.resolver.Resolve(a.Resume)}
}

func (m *Mapper) Skill(s *model.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, YearsOfExperience: s.YearsOfExperience}
}

func (m *Mapper) Skills(skills []model.Skill) []SkillResponse {
	out := make([]SkillResponse, len(skills))
	for i := range skills {
		out[i] = m.Skill(&skills[i])
	}
	return out
}

func (m *Mapper) WorkExperience(w *model.WorkExperience) WorkExperienceResponse {
	return WorkExperienceResponse{
		ID:               w.ID,
		JobTitle:         w.JobTitle,
		CompanyName:      w.CompanyName,
		StartDate:        model.FormatDate(w.StartDate),
		EndDate:          model.FormatDatePtr(w.EndDate),
		CurrentlyWorking: w.CurrentlyWorking,
		Description:      w.Description,
	}
}

func (m *Mapper) WorkExperiences(items []model.WorkExperience) []WorkExperienceResponse {
	out := make([]WorkExperienceResponse, len(items))
	for i := range items {
		out[i] = m.WorkExperience(&items[i])
	}
	return out
}

func (m *Mapper) Education(e *model.Education) EducationResponse {
	resp := EducationResponse{
		ID:                e.ID,
		Institution:       e.Institution,
		Degree:            e.Degree,
		FieldOfStudy:      e.FieldOfStudy,
		StartDate:         model.FormatDate(e.StartDate),
		EndDate:           model.FormatDatePtr(e.EndDate),
		CurrentlyEnrolled: e.CurrentlyEnrolled,
	}
	if e.GPA.Valid {
		gpa := e.GPA.Decimal
		resp.GPA = &gpa
	}
	return resp
}

func (m *Mapper) Educations(items []model.Education) []EducationResponse {
	out := make([]EducationResponse, len(items))
	for i := range items {
		out[i] = m.Education(&items[i])
	}
	return out
}

func (m *Mapper) CompanySummary(c *model.Company) CompanySummary {
	if c == nil {
		return CompanySummary{Name: unknownCompany}
	}
	return CompanySummary{ID: c.ID, Name: c.Name, Image: m.resolver.Resolve(c.Image)}
}

func (m *Mapper) Company(c *model.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		Description: c.Description,
		Image:       m.resolver.Resolve(c.Image),
	}
}

func (m *Mapper) Companies(companies []model.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = m.Company(&companies[i])
	}
	return out
}

// CompanyDetail marks the caller's own row with IsCurrentUser.
func (m *Mapper) CompanyDetail(d *service.CompanyDetail, callerID uint) CompanyDetailResponse {
	resp := CompanyDetailResponse{
		Company:    m.Company(d.Company),
		Recruiters: make([]CompanyRecruiter, len(d.Recruiters)),
		Stats: CompanyStats{
			TotalRecruiters:  d.TotalRecruiters,
			ActiveRecruiters: d.ActiveRecruiters,
			TotalJobs:        d.TotalJobs,
		},
	}
	for i, s := range d.Recruiters {
		row := CompanyRecruiter{
			UserID:        s.Recruiter.UserID,
			Name:          unknownRecruiter,
			IsActive:      s.Recruiter.IsActive,
			StartDate:     model.FormatDate(s.Recruiter.StartDate),
			EndDate:       model.FormatDatePtr(s.Recruiter.EndDate),
			JobsPosted:    s.JobsPosted,
			IsCurrentUser: s.Recruiter.UserID == callerID,
		}
		if u := s.Recruiter.User; u != nil {
			row.Name = u.FullName()
			row.Email = u.Email
		}
		resp.Recruiters[i] = row
	}
	return resp
}

// Job renders a job. stats may be nil.
func (m *Mapper) Job(j *model.Job, stats *model.ApplicationStats) JobResponse {
	resp := JobResponse{
		ID:            j.ID,
		Title:         j.Title,
		Description:   j.Description,
		Location:      j.Location,
		Salary:        j.Salary,
		PostedAt:      j.PostedAt,
		RecruiterID:   j.RecruiterID,
		RecruiterName: unknownRecruiter,
		Company:       CompanySummary{Name: unknownCompany},
		Stats:         stats,
	}
	if r := j.Recruiter; r != nil {
		if r.User != nil && r.User.FullName() != "" {
			resp.RecruiterName = r.User.FullName()
		}
		if r.Company != nil {
			resp.Company = m.CompanySummary(r.Company)
		}
	}
	return resp
}

// JobPage renders a listing page with next and previous page numbers.
func (m *Mapper) JobPage(p *service.JobPage) JobListResponse {
	resp := JobListResponse{
		TotalCount:  p.Total,
		TotalPages:  p.TotalPages(),
		CurrentPage: p.Page.Number,
		Results:     make([]JobResponse, len(p.Jobs)),
	}
	if p.Company != nil {
		id := p.Company.ID
		resp.CompanyID = &id
		resp.CompanyName = p.Company.Name
	}
	if p.Page.Number < resp.TotalPages {
		next := p.Page.Number + 1
		resp.Next = &next
	}
	if p.Page.Number > 1 {
		prev := p.Page.Number - 1
		resp.Previous = &prev
	}
	for i := range p.Jobs {
		stats := p.Stats[p.Jobs[i].ID]
		resp.Results[i] = m.Job(&p.Jobs[i], &stats)
	}
	return resp
}

func (m *Mapper) Application(a *model.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:               a.ID,
		JobID:            a.JobID,
		ApplicantID:      a.ApplicantID,
		Status:           a.Status,
		RecruiterComment: a.RecruiterComment,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if j := a.Job; j != nil {
		resp.JobTitle = j.Title
		company := CompanySummary{Name: unknownCompany}
		if j.Recruiter != nil && j.Recruiter.Company != nil {
			company = m.CompanySummary(j.Recruiter.Company)
		}
		resp.Company = &company
	}
	if ap := a.Applicant; ap != nil {
		resp.Resume = m.resolver.Resolve(ap.Resume)
		if ap.User != nil {
			resp.ApplicantName = ap.User.FullName()
			resp.ApplicantEmail = ap.User.Email
		}
	}
	return resp
}

func (m *Mapper) Applications(items []model.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, len(items))
	for i := range items {
		out[i] = m.Application(&items[i])
	}
	return out
}

func (m *Mapper) Bookmark(b *model.Bookmark) BookmarkResponse {
	resp := BookmarkResponse{ID: b.ID, JobID: b.JobID, CreatedAt: b.CreatedAt}
	if b.Job != nil {
		job := m.Job(b.Job, nil)
		resp.Job = &job
	}
	return resp
}

func (m *Mapper) Bookmarks(items []model.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, len(items))
	for i := range items {
		out[i] = m.Bookmark(&items[i])
	}
	return out
}

func (m *Mapper) Applicants(items []model.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, len(items))
	for i := range items {
		out[i] = ApplicantResponse{User: m.User(items[i].User), Resume: m.resolver.Resolve(items[i].Resume)}
	}
	return out
}

func (m *Mapper) UserPage(p *service.UserPage) UserListResponse {
	pages := 0
	if p.Page.Size > 0 {
		pages = int((p.Total + int64(p.Page.Size) - 1) / int64(p.Page.Size))
	}
	return UserListResponse{
		TotalCount:  p.Total,
		TotalPages:  pages,
		CurrentPage: p.Page.Number,
		Results:     m.Users(p.Users),
	}
}

func (m *Mapper) Stats(s *service.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers:           s.TotalUsers,
		UsersByRole:          s.UsersByRole,
		TotalCompanies:       s.Companies,
		TotalJobs:            s.Jobs,
		TotalApplications:    s.TotalApplications,
		ApplicationsByStatus: s.ApplicationsByStatus,
	}
}

func (m *Mapper) BrokenFiles(files []service.BrokenFile) []BrokenFileResponse {
	out := make([]BrokenFileResponse, len(files))
	for i, f := range files {
		out[i] = BrokenFileResponse{Kind: f.Kind, OwnerID: f.OwnerID, Path: f.Path}
	}
	return out
}
