package store

import (
	"context"
	"database/sql"

	mysql "github.com/go-sql-driver/mysql"

	"tajobs/internal/models"
)

// JobStore persists job postings and their applicant lists. The applicant
// list lives in a join table with a unique (job_id, user_id) key, so an
// append is a single atomic INSERT: two students applying concurrently can
// never produce a duplicate or a lost update.
type JobStore interface {
	Create(ctx context.Context, j *models.Job) (int64, error)
	List(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	AddApplicant(ctx context.Context, jobID, userID int64) error
	HasApplicant(ctx context.Context, jobID, userID int64) (bool, error)
	ListByInstructor(ctx context.Context, email string) ([]models.JobWithApplicants, error)
	ListByApplicant(ctx context.Context, userID int64) ([]models.Application, error)
	Update(ctx context.Context, id int64, e *models.JobEdit) error
	Delete(ctx context.Context, id int64) error
}

type MySQLJobStore struct {
	DB *sql.DB
}

func NewMySQLJobStore(db *sql.DB) *MySQLJobStore {
	return &MySQLJobStore{DB: db}
}

const jobColumns = `id, title, description, employer_email, employer_phone,
	instructor_email, is_active, date_posted`

func (s *MySQLJobStore) Create(ctx context.Context, j *models.Job) (int64, error) {
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO jobs (title, description, employer_email, employer_phone, instructor_email)
		 VALUES (?, ?, ?, ?, ?)`,
		j.JobTitle, j.JobDescription, j.EmployerEmail, nullString(j.EmployerPhone), j.InstructorEmail,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *MySQLJobStore) List(ctx context.Context) ([]models.Job, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	idx := map[int64]int{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		idx[j.ID] = len(jobs)
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	arows, err := s.DB.QueryContext(ctx,
		`SELECT job_id, user_id FROM job_applicants ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer arows.Close()
	for arows.Next() {
		var jobID, userID int64
		if err := arows.Scan(&jobID, &userID); err != nil {
			return nil, err
		}
		if i, ok := idx[jobID]; ok {
			jobs[i].Applicants = append(jobs[i].Applicants, userID)
		}
	}
	return jobs, arows.Err()
}

func (s *MySQLJobStore) Get(ctx context.Context, id int64) (*models.Job, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		return nil, err
	}
	j.Applicants, err = s.applicantIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (s *MySQLJobStore) AddApplicant(ctx context.Context, jobID, userID int64) error {
	var tmp int
	if err := s.DB.QueryRowContext(ctx, `SELECT 1 FROM jobs WHERE id = ?`, jobID).Scan(&tmp); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO job_applicants (job_id, user_id) VALUES (?, ?)`, jobID, userID)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return ErrDuplicateApplicant
		}
		return err
	}
	return nil
}

func (s *MySQLJobStore) HasApplicant(ctx context.Context, jobID, userID int64) (bool, error) {
	var tmp int
	if err := s.DB.QueryRowContext(ctx, `SELECT 1 FROM jobs WHERE id = ?`, jobID).Scan(&tmp); err != nil {
		if err == sql.ErrNoRows {
			return false, ErrNotFound
		}
		return false, err
	}
	err := s.DB.QueryRowContext(ctx,
		`SELECT 1 FROM job_applicants WHERE job_id = ? AND user_id = ?`, jobID, userID).Scan(&tmp)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MySQLJobStore) ListByInstructor(ctx context.Context, email string) ([]models.JobWithApplicants, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE instructor_email = ? ORDER BY id`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.JobWithApplicants
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, models.JobWithApplicants{Job: *j})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		arows, err := s.DB.QueryContext(ctx,
			`SELECT u.id, u.name, u.email, u.major, u.class_standing, u.gpa
			 FROM job_applicants a JOIN users u ON u.id = a.user_id
			 WHERE a.job_id = ? ORDER BY a.id`, jobs[i].ID)
		if err != nil {
			return nil, err
		}
		for arows.Next() {
			var ap models.Applicant
			var major, standing sql.NullString
			var gpa sql.NullFloat64
			if err := arows.Scan(&ap.ID, &ap.Name, &ap.Email, &major, &standing, &gpa); err != nil {
				arows.Close()
				return nil, err
			}
			ap.Major = major.String
			ap.ClassStanding = standing.String
			if gpa.Valid {
				v := gpa.Float64
				ap.GPA = &v
			}
			jobs[i].Applicants = append(jobs[i].Applicants, ap.ID)
			jobs[i].ApplicantProfiles = append(jobs[i].ApplicantProfiles, ap)
		}
		if err := arows.Err(); err != nil {
			arows.Close()
			return nil, err
		}
		arows.Close()
	}
	return jobs, nil
}

func (s *MySQLJobStore) ListByApplicant(ctx context.Context, userID int64) ([]models.Application, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT j.id, j.title, j.employer_email
		 FROM jobs j JOIN job_applicants a ON a.job_id = j.id
		 WHERE a.user_id = ? ORDER BY a.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.JobTitle, &a.EmployerEmail); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Update replaces the editable fields wholesale.
func (s *MySQLJobStore) Update(ctx context.Context, id int64, e *models.JobEdit) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE jobs SET title = ?, description = ?, employer_email = ?, employer_phone = ? WHERE id = ?`,
		e.JobTitle, e.JobDescription, e.EmployerEmail, nullString(e.EmployerPhone), id)
	return err
}

func (s *MySQLJobStore) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MySQLJobStore) applicantIDs(ctx context.Context, jobID int64) ([]int64, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT user_id FROM job_applicants WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*models.Job, error) {
	var j models.Job
	var phone sql.NullString
	err := row.Scan(&j.ID, &j.JobTitle, &j.JobDescription, &j.EmployerEmail, &phone,
		&j.InstructorEmail, &j.IsActive, &j.DatePosted)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	j.EmployerPhone = phone.String
	return &j, nil
}
