package models

import "time"

// ResumeDB represents the scalar resume row without its child collections.
type ResumeDB struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	DOB            string    `json:"dob" db:"dob"`
	LinkedIn       string    `json:"linkedin" db:"linkedin"`
	GitHub         string    `json:"github" db:"github"`
	Objective      string    `json:"objective" db:"objective"`
	ProfilePicture string    `json:"profilePicture" db:"profile_picture"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// Resume is the full aggregate: one resume row plus its six child collections.
// Child slices are assembled by the service layer, not scanned directly.
type Resume struct {
	ResumeDB
	WorkExperience []WorkExperienceDB `json:"workExperience" db:"-"`
	Education      []EducationDB      `json:"education" db:"-"`
	Projects       []ProjectDB        `json:"projects" db:"-"`
	Skills         []SkillGroupDB     `json:"skills" db:"-"`
	Hobbies        []HobbyDB          `json:"hobbies" db:"-"`
	Certifications []CertificationDB  `json:"certifications" db:"-"`
}

// WorkExperienceDB represents one work history entry of a resume.
type WorkExperienceDB struct {
	ID          int64  `json:"id" db:"id"`
	ResumeID    int64  `json:"resumeId" db:"resume_id"`
	Company     string `json:"company" db:"company"`
	Position    string `json:"position" db:"position"`
	StartDate   string `json:"startDate" db:"start_date"`
	EndDate     string `json:"endDate" db:"end_date"`
	Experience  string `json:"experience" db:"experience"`
	Description string `json:"description" db:"description"`
}

// EducationDB represents one education entry of a resume.
type EducationDB struct {
	ID          int64  `json:"id" db:"id"`
	ResumeID    int64  `json:"resumeId" db:"resume_id"`
	Institution string `json:"institution" db:"institution"`
	Degree      string `json:"degree" db:"degree"`
	Year        string `json:"year" db:"year"`
	Details     string `json:"details" db:"details"`
}

// ProjectDB represents one project entry of a resume.
type ProjectDB struct {
	ID           int64  `json:"id" db:"id"`
	ResumeID     int64  `json:"resumeId" db:"resume_id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	Technologies string `json:"technologies" db:"technologies"`
}

// SkillGroupDB represents one skill category with its free-text item list.
type SkillGroupDB struct {
	ID       int64  `json:"id" db:"id"`
	ResumeID int64  `json:"resumeId" db:"resume_id"`
	Category string `json:"category" db:"category"`
	Items    string `json:"items" db:"skills_list"`
}

// HobbyDB represents one hobby entry of a resume.
type HobbyDB struct {
	ID       int64  `json:"id" db:"id"`
	ResumeID int64  `json:"resumeId" db:"resume_id"`
	Hobby    string `json:"hobby" db:"hobby"`
}

// CertificationDB represents one certification entry of a resume.
type CertificationDB struct {
	ID       int64  `json:"id" db:"id"`
	ResumeID int64  `json:"resumeId" db:"resume_id"`
	Name     string `json:"name" db:"name"`
	Issuer   string `json:"issuer" db:"issuer"`
	Year     string `json:"year" db:"year"`
}
