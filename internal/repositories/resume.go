package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/models"
)

// ResumeReadRepository handles resume and child-collection lookups.
type ResumeReadRepository struct {
	db *sqlx.DB
}

func NewResumeReadRepository(db *sqlx.DB) *ResumeReadRepository {
	return &ResumeReadRepository{db: db}
}

// GetByID returns the scalar resume row, or nil if no resume has that id.
func (r *ResumeReadRepository) GetByID(ctx context.Context, resumeID int64) (*models.ResumeDB, error) {
	const query = `
		SELECT id, user_id, name, email, phone, dob, linkedin, github, objective, profile_picture, created_at, updated_at
		FROM resumes
		WHERE id = $1
	`

	var resume models.ResumeDB
	err := r.db.GetContext(ctx, &resume, query, resumeID)

	logger.Log.Infow("resume query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{resumeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// ListByUserID returns all resume rows owned by a user, most recent first.
func (r *ResumeReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.ResumeDB, error) {
	const query = `
		SELECT id, user_id, name, email, phone, dob, linkedin, github, objective, profile_picture, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	resumes := []models.ResumeDB{}
	err := r.db.SelectContext(ctx, &resumes, query, userID)

	logger.Log.Infow("resume query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(resumes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// ListWorkExperience returns all work history rows of a resume.
func (r *ResumeReadRepository) ListWorkExperience(ctx context.Context, resumeID int64) ([]models.WorkExperienceDB, error) {
	const query = `
		SELECT id, resume_id, company, position, start_date, end_date, experience, description
		FROM work_experience
		WHERE resume_id = $1
	`

	items := []models.WorkExperienceDB{}
	if err := r.db.SelectContext(ctx, &items, query, resumeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListEducation returns all education rows of a resume.
func (r *ResumeReadRepository) ListEducation(ctx context.Context, resumeID int64) ([]models.EducationDB, error) {
	const query = `
		SELECT id, resume_id, institution, degree, year, details
		FROM education
		WHERE resume_id = $1
	`

	items := []models.EducationDB{}
	if err := r.db.SelectContext(ctx, &items, query, resumeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListProjects returns all project rows of a resume.
func (r *ResumeReadRepository) ListProjects(ctx context.Context, resumeID int64) ([]models.ProjectDB, error) {
	const query = `
		SELECT id, resume_id, title, description, technologies
		FROM projects
		WHERE resume_id = $1
	`

	items := []models.ProjectDB{}
	if err := r.db.SelectContext(ctx, &items, query, resumeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListSkills returns all skill-group rows of a resume.
func (r *ResumeReadRepository) ListSkills(ctx context.Context, resumeID int64) ([]models.SkillGroupDB, error) {
	const query = `
		SELECT id, resume_id, category, skills_list
		FROM skills
		WHERE resume_id = $1
	`

	items := []models.SkillGroupDB{}
	if err := r.db.SelectContext(ctx, &items, query, resumeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListHobbies returns all hobby rows of a resume.
func (r *ResumeReadRepository) ListHobbies(ctx context.Context, resumeID int64) ([]models.HobbyDB, error) {
	const query = `
		SELECT id, resume_id, hobby
		FROM hobbies
		WHERE resume_id = $1
	`

	items := []models.HobbyDB{}
	if err := r.db.SelectContext(ctx, &items, query, resumeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCertifications returns all certification rows of a resume.
func (r *ResumeReadRepository) ListCertifications(ctx context.Context, resumeID int64) ([]models.CertificationDB, error) {
	const query = `
		SELECT id, resume_id, name, issuer, year
		FROM certifications
		WHERE resume_id = $1
	`

	items := []models.CertificationDB{}
	if err := r.db.SelectContext(ctx, &items, query, resumeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ResumeWriteRepository handles resume and child-collection writes. When a
// transaction is present in the request context it executes there, so the
// parent insert and every child insert of one aggregate commit or roll back
// as a unit.
type ResumeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewResumeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ResumeWriteRepository {
	return &ResumeWriteRepository{db: db, txGetter: txGetter}
}

func (r *ResumeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveResume inserts the parent resume row and returns its generated id.
func (r *ResumeWriteRepository) SaveResume(ctx context.Context, resume *models.ResumeDB) (int64, error) {
	const query = `
		INSERT INTO resumes (user_id, name, email, phone, dob, linkedin, github, objective, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	args := []any{
		resume.UserID, resume.Name, resume.Email, resume.Phone,
		resume.DOB, resume.LinkedIn, resume.GitHub, resume.Objective, resume.ProfilePicture,
	}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("resume insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{resume.UserID, resume.Name},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// SaveWorkExperience inserts one work history row for a resume.
func (r *ResumeWriteRepository) SaveWorkExperience(ctx context.Context, resumeID int64, item models.WorkExperienceDB) error {
	const query = `
		INSERT INTO work_experience (resume_id, company, position, start_date, end_date, experience, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		resumeID, item.Company, item.Position, item.StartDate, item.EndDate, item.Experience, item.Description)
	return err
}

// SaveEducation inserts one education row for a resume.
func (r *ResumeWriteRepository) SaveEducation(ctx context.Context, resumeID int64, item models.EducationDB) error {
	const query = `
		INSERT INTO education (resume_id, institution, degree, year, details)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		resumeID, item.Institution, item.Degree, item.Year, item.Details)
	return err
}

// SaveProject inserts one project row for a resume.
func (r *ResumeWriteRepository) SaveProject(ctx context.Context, resumeID int64, item models.ProjectDB) error {
	const query = `
		INSERT INTO projects (resume_id, title, description, technologies)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		resumeID, item.Title, item.Description, item.Technologies)
	return err
}

// SaveSkillGroup inserts one skill-group row for a resume.
func (r *ResumeWriteRepository) SaveSkillGroup(ctx context.Context, resumeID int64, item models.SkillGroupDB) error {
	const query = `
		INSERT INTO skills (resume_id, category, skills_list)
		VALUES ($1, $2, $3)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		resumeID, item.Category, item.Items)
	return err
}

// SaveHobby inserts one hobby row for a resume.
func (r *ResumeWriteRepository) SaveHobby(ctx context.Context, resumeID int64, item models.HobbyDB) error {
	const query = `
		INSERT INTO hobbies (resume_id, hobby)
		VALUES ($1, $2)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query, resumeID, item.Hobby)
	return err
}

// SaveCertification inserts one certification row for a resume.
func (r *ResumeWriteRepository) SaveCertification(ctx context.Context, resumeID int64, item models.CertificationDB) error {
	const query = `
		INSERT INTO certifications (resume_id, name, issuer, year)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		resumeID, item.Name, item.Issuer, item.Year)
	return err
}

// Delete removes a resume row; the schema cascades the delete to all child
// rows. Deleting an id that does not exist is not an error.
func (r *ResumeWriteRepository) Delete(ctx context.Context, resumeID int64) error {
	const query = `DELETE FROM resumes WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, resumeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("resume delete",
		"query", query,
		"args", []any{resumeID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
