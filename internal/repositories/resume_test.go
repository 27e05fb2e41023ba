package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/skomarov/resume-builder/internal/models"
)

func seedUser(t *testing.T, repo *UserWriteRepository, username, email string) int64 {
	t.Helper()
	id, err := repo.Save(context.Background(), username, "hash", "F", "L", email, "555")
	assert.NoError(t, err)
	return id
}

func TestResumeRepositories_AggregateRoundTrip(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "alice", "alice@example.com")

	writeRepo := NewResumeWriteRepository(db, nil)
	readRepo := NewResumeReadRepository(db)

	resumeID, err := writeRepo.SaveResume(ctx, &models.ResumeDB{
		UserID:         userID,
		Name:           "Alice",
		Email:          "a@x.com",
		Phone:          "555",
		DOB:            "1990-01-01",
		LinkedIn:       "https://linkedin.com/in/alice",
		GitHub:         "https://github.com/alice",
		Objective:      "build things",
		ProfilePicture: "pic.png",
	})
	assert.NoError(t, err)
	assert.Greater(t, resumeID, int64(0))

	assert.NoError(t, writeRepo.SaveWorkExperience(ctx, resumeID, models.WorkExperienceDB{
		Company: "Acme", Position: "Eng", StartDate: "2020", EndDate: "2022", Experience: "2y", Description: "did stuff",
	}))
	assert.NoError(t, writeRepo.SaveWorkExperience(ctx, resumeID, models.WorkExperienceDB{
		Company: "Initech", Position: "SRE", StartDate: "2022", EndDate: "2024", Experience: "2y", Description: "ops",
	}))
	assert.NoError(t, writeRepo.SaveEducation(ctx, resumeID, models.EducationDB{
		Institution: "MIT", Degree: "BSc", Year: "2019", Details: "CS",
	}))
	assert.NoError(t, writeRepo.SaveProject(ctx, resumeID, models.ProjectDB{
		Title: "proj", Description: "desc", Technologies: "go, postgres",
	}))
	assert.NoError(t, writeRepo.SaveSkillGroup(ctx, resumeID, models.SkillGroupDB{
		Category: "languages", Items: "Go, SQL",
	}))
	assert.NoError(t, writeRepo.SaveHobby(ctx, resumeID, models.HobbyDB{Hobby: "chess"}))
	assert.NoError(t, writeRepo.SaveCertification(ctx, resumeID, models.CertificationDB{
		Name: "CKA", Issuer: "CNCF", Year: "2023",
	}))

	row, err := readRepo.GetByID(ctx, resumeID)
	assert.NoError(t, err)
	assert.NotNil(t, row)
	assert.Equal(t, userID, row.UserID)
	assert.Equal(t, "Alice", row.Name)
	assert.Equal(t, "a@x.com", row.Email)
	assert.Equal(t, "1990-01-01", row.DOB)
	assert.Equal(t, "build things", row.Objective)

	work, err := readRepo.ListWorkExperience(ctx, resumeID)
	assert.NoError(t, err)
	assert.Len(t, work, 2)
	companies := []string{work[0].Company, work[1].Company}
	assert.ElementsMatch(t, []string{"Acme", "Initech"}, companies)

	edu, err := readRepo.ListEducation(ctx, resumeID)
	assert.NoError(t, err)
	assert.Len(t, edu, 1)
	assert.Equal(t, "MIT", edu[0].Institution)

	projects, err := readRepo.ListProjects(ctx, resumeID)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "go, postgres", projects[0].Technologies)

	skills, err := readRepo.ListSkills(ctx, resumeID)
	assert.NoError(t, err)
	assert.Len(t, skills, 1)
	assert.Equal(t, "languages", skills[0].Category)
	assert.Equal(t, "Go, SQL", skills[0].Items)

	hobbies, err := readRepo.ListHobbies(ctx, resumeID)
	assert.NoError(t, err)
	assert.Len(t, hobbies, 1)
	assert.Equal(t, "chess", hobbies[0].Hobby)

	certs, err := readRepo.ListCertifications(ctx, resumeID)
	assert.NoError(t, err)
	assert.Len(t, certs, 1)
	assert.Equal(t, "CKA", certs[0].Name)
	assert.Equal(t, "CNCF", certs[0].Issuer)
}

func TestResumeReadRepository_GetByID_NotFound(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewResumeReadRepository(db)

	row, err := readRepo.GetByID(context.Background(), 12345)
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestResumeWriteRepository_ChildWithoutParentFails(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewResumeWriteRepository(db, nil)

	err := writeRepo.SaveHobby(context.Background(), 12345, models.HobbyDB{Hobby: "chess"})
	assert.Error(t, err) // foreign key violation
}

func TestResumeReadRepository_ListByUserID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userRepo := NewUserWriteRepository(db)
	aliceID := seedUser(t, userRepo, "alice", "alice@example.com")
	bobID := seedUser(t, userRepo, "bob", "bob@example.com")

	writeRepo := NewResumeWriteRepository(db, nil)
	readRepo := NewResumeReadRepository(db)

	oldID, err := writeRepo.SaveResume(ctx, &models.ResumeDB{UserID: aliceID, Name: "Old", Email: "a@x.com", Phone: "555"})
	assert.NoError(t, err)
	newID, err := writeRepo.SaveResume(ctx, &models.ResumeDB{UserID: aliceID, Name: "New", Email: "a@x.com", Phone: "555"})
	assert.NoError(t, err)
	_, err = writeRepo.SaveResume(ctx, &models.ResumeDB{UserID: bobID, Name: "Bob resume", Email: "b@x.com", Phone: "556"})
	assert.NoError(t, err)

	// Spread creation times so the ordering assertion is deterministic.
	_, err = db.Exec("UPDATE resumes SET created_at = created_at - INTERVAL '1 hour' WHERE id = $1", oldID)
	assert.NoError(t, err)

	resumes, err := readRepo.ListByUserID(ctx, aliceID)
	assert.NoError(t, err)
	assert.Len(t, resumes, 2)
	assert.Equal(t, newID, resumes[0].ID)
	assert.Equal(t, oldID, resumes[1].ID)
	for _, r := range resumes {
		assert.Equal(t, aliceID, r.UserID)
	}

	t.Run("UserWithoutResumes", func(t *testing.T) {
		carolID := seedUser(t, userRepo, "carol", "carol@example.com")
		resumes, err := readRepo.ListByUserID(ctx, carolID)
		assert.NoError(t, err)
		assert.Empty(t, resumes)
	})
}

func TestResumeWriteRepository_Delete_CascadesAndIsIdempotent(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "alice", "alice@example.com")

	writeRepo := NewResumeWriteRepository(db, nil)
	readRepo := NewResumeReadRepository(db)

	resumeID, err := writeRepo.SaveResume(ctx, &models.ResumeDB{UserID: userID, Name: "Alice", Email: "a@x.com", Phone: "555"})
	assert.NoError(t, err)
	assert.NoError(t, writeRepo.SaveHobby(ctx, resumeID, models.HobbyDB{Hobby: "chess"}))
	assert.NoError(t, writeRepo.SaveEducation(ctx, resumeID, models.EducationDB{Institution: "MIT", Degree: "BSc", Year: "2019"}))

	assert.NoError(t, writeRepo.Delete(ctx, resumeID))

	row, err := readRepo.GetByID(ctx, resumeID)
	assert.NoError(t, err)
	assert.Nil(t, row)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM hobbies WHERE resume_id=$1", resumeID))
	assert.Zero(t, count)
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM education WHERE resume_id=$1", resumeID))
	assert.Zero(t, count)

	// Deleting again is not an error.
	assert.NoError(t, writeRepo.Delete(ctx, resumeID))
}

func TestResumeWriteRepository_DeleteUserCascadesToResumes(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "alice", "alice@example.com")

	writeRepo := NewResumeWriteRepository(db, nil)

	resumeID, err := writeRepo.SaveResume(ctx, &models.ResumeDB{UserID: userID, Name: "Alice", Email: "a@x.com", Phone: "555"})
	assert.NoError(t, err)
	assert.NoError(t, writeRepo.SaveHobby(ctx, resumeID, models.HobbyDB{Hobby: "chess"}))

	_, err = db.Exec("DELETE FROM users WHERE id=$1", userID)
	assert.NoError(t, err)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM resumes WHERE id=$1", resumeID))
	assert.Zero(t, count)
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM hobbies WHERE resume_id=$1", resumeID))
	assert.Zero(t, count)
}

func TestResumeWriteRepository_UsesTransactionFromContext(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "alice", "alice@example.com")

	tx, err := db.Beginx()
	assert.NoError(t, err)

	writeRepo := NewResumeWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	resumeID, err := writeRepo.SaveResume(ctx, &models.ResumeDB{UserID: userID, Name: "Alice", Email: "a@x.com", Phone: "555"})
	assert.NoError(t, err)
	assert.NoError(t, writeRepo.SaveHobby(ctx, resumeID, models.HobbyDB{Hobby: "chess"}))

	// Roll back: neither parent nor child may persist.
	assert.NoError(t, tx.Rollback())

	readRepo := NewResumeReadRepository(db)
	row, err := readRepo.GetByID(ctx, resumeID)
	assert.NoError(t, err)
	assert.Nil(t, row)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM hobbies WHERE resume_id=$1", resumeID))
	assert.Zero(t, count)
}
