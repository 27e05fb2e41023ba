package services

import (
	"context"
	"errors"

	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/models"
)

var (
	// ErrUserRequired is returned when a resume is submitted without a user id.
	ErrUserRequired = errors.New("user id is required")
	// ErrResumeNotFound is returned when no resume exists with the requested id.
	ErrResumeNotFound = errors.New("resume not found")
)

// ResumeReader defines read operations for resumes and their child collections.
type ResumeReader interface {
	GetByID(ctx context.Context, resumeID int64) (*models.ResumeDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.ResumeDB, error)
	ListWorkExperience(ctx context.Context, resumeID int64) ([]models.WorkExperienceDB, error)
	ListEducation(ctx context.Context, resumeID int64) ([]models.EducationDB, error)
	ListProjects(ctx context.Context, resumeID int64) ([]models.ProjectDB, error)
	ListSkills(ctx context.Context, resumeID int64) ([]models.SkillGroupDB, error)
	ListHobbies(ctx context.Context, resumeID int64) ([]models.HobbyDB, error)
	ListCertifications(ctx context.Context, resumeID int64) ([]models.CertificationDB, error)
}

// ResumeWriter defines write operations for resumes and their child collections.
type ResumeWriter interface {
	SaveResume(ctx context.Context, resume *models.ResumeDB) (int64, error)
	SaveWorkExperience(ctx context.Context, resumeID int64, item models.WorkExperienceDB) error
	SaveEducation(ctx context.Context, resumeID int64, item models.EducationDB) error
	SaveProject(ctx context.Context, resumeID int64, item models.ProjectDB) error
	SaveSkillGroup(ctx context.Context, resumeID int64, item models.SkillGroupDB) error
	SaveHobby(ctx context.Context, resumeID int64, item models.HobbyDB) error
	SaveCertification(ctx context.Context, resumeID int64, item models.CertificationDB) error
	Delete(ctx context.Context, resumeID int64) error
}

// ResumeService assembles and decomposes resume aggregates: one parent row
// plus six child collections treated as a single unit.
type ResumeService struct {
	reader ResumeReader
	writer ResumeWriter
}

// NewResumeService creates a new ResumeService instance.
func NewResumeService(reader ResumeReader, writer ResumeWriter) *ResumeService {
	return &ResumeService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts the parent resume row and fans out every child item tagged
// with the generated id. The caller must run it inside one transaction so a
// failed child insert aborts the whole aggregate.
func (svc *ResumeService) Create(ctx context.Context, resume *models.Resume) (int64, error) {
	if resume.UserID == 0 {
		return 0, ErrUserRequired
	}

	resumeID, err := svc.writer.SaveResume(ctx, &resume.ResumeDB)
	if err != nil {
		logger.Log.Errorw("failed to save resume", "err", err)
		return 0, err
	}

	for _, item := range resume.WorkExperience {
		if err := svc.writer.SaveWorkExperience(ctx, resumeID, item); err != nil {
			logger.Log.Errorw("failed to save work experience", "resumeID", resumeID, "err", err)
			return 0, err
		}
	}
	for _, item := range resume.Education {
		if err := svc.writer.SaveEducation(ctx, resumeID, item); err != nil {
			logger.Log.Errorw("failed to save education", "resumeID", resumeID, "err", err)
			return 0, err
		}
	}
	for _, item := range resume.Projects {
		if err := svc.writer.SaveProject(ctx, resumeID, item); err != nil {
			logger.Log.Errorw("failed to save project", "resumeID", resumeID, "err", err)
			return 0, err
		}
	}
	for _, item := range resume.Skills {
		if err := svc.writer.SaveSkillGroup(ctx, resumeID, item); err != nil {
			logger.Log.Errorw("failed to save skill group", "resumeID", resumeID, "err", err)
			return 0, err
		}
	}
	for _, item := range resume.Hobbies {
		if err := svc.writer.SaveHobby(ctx, resumeID, item); err != nil {
			logger.Log.Errorw("failed to save hobby", "resumeID", resumeID, "err", err)
			return 0, err
		}
	}
	for _, item := range resume.Certifications {
		if err := svc.writer.SaveCertification(ctx, resumeID, item); err != nil {
			logger.Log.Errorw("failed to save certification", "resumeID", resumeID, "err", err)
			return 0, err
		}
	}

	return resumeID, nil
}

// Get fetches the parent row and all six child collections and composes them
// into one aggregate.
func (svc *ResumeService) Get(ctx context.Context, resumeID int64) (*models.Resume, error) {
	row, err := svc.reader.GetByID(ctx, resumeID)
	if err != nil {
		logger.Log.Errorw("failed to get resume", "resumeID", resumeID, "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrResumeNotFound
	}

	resume := &models.Resume{ResumeDB: *row}

	if resume.WorkExperience, err = svc.reader.ListWorkExperience(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to list work experience", "resumeID", resumeID, "err", err)
		return nil, err
	}
	if resume.Education, err = svc.reader.ListEducation(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to list education", "resumeID", resumeID, "err", err)
		return nil, err
	}
	if resume.Projects, err = svc.reader.ListProjects(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to list projects", "resumeID", resumeID, "err", err)
		return nil, err
	}
	if resume.Skills, err = svc.reader.ListSkills(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to list skills", "resumeID", resumeID, "err", err)
		return nil, err
	}
	if resume.Hobbies, err = svc.reader.ListHobbies(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to list hobbies", "resumeID", resumeID, "err", err)
		return nil, err
	}
	if resume.Certifications, err = svc.reader.ListCertifications(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to list certifications", "resumeID", resumeID, "err", err)
		return nil, err
	}

	return resume, nil
}

// List returns the parent rows owned by a user, most recent first. A user
// with no resumes yields an empty slice, not an error.
func (svc *ResumeService) List(ctx context.Context, userID int64) ([]models.ResumeDB, error) {
	resumes, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list resumes", "userID", userID, "err", err)
		return nil, err
	}
	return resumes, nil
}

// Delete removes a resume and, via cascade, all its children. Deleting an id
// that does not exist succeeds.
func (svc *ResumeService) Delete(ctx context.Context, resumeID int64) error {
	if err := svc.writer.Delete(ctx, resumeID); err != nil {
		logger.Log.Errorw("failed to delete resume", "resumeID", resumeID, "err", err)
		return err
	}
	return nil
}
