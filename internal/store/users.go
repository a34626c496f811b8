package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"

	"tajobs/internal/models"
)

// UserStore persists user records: identity, credential, verification and
// reset state, academic profile.
type UserStore interface {
	Create(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByVerificationCode only matches codes whose expiry is after now.
	GetByVerificationCode(ctx context.Context, code string, now time.Time) (*models.User, error)
	MarkVerified(ctx context.Context, id int64) error
	SetResetToken(ctx context.Context, id int64, token string, expires time.Time) error
	// GetByResetToken only matches tokens whose expiry is after now.
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	// UpdatePassword stores a new hash and clears any pending reset token.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateProfile(ctx context.Context, id int64, p *models.ProfileUpdate) error
}

type MySQLUserStore struct {
	DB *sql.DB
}

func NewMySQLUserStore(db *sql.DB) *MySQLUserStore {
	return &MySQLUserStore{DB: db}
}

const userColumns = `id, name, email, password_hash, role, is_verified,
	major, class_standing, gpa, coursework,
	verification_code, verification_expires, reset_token, reset_expires, created_at`

func (s *MySQLUserStore) Create(ctx context.Context, u *models.User) (int64, error) {
	if err := models.ValidateNewUser(u); err != nil {
		return 0, err
	}
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role, verification_code, verification_expires)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.Role, nullString(u.VerificationCode), u.VerificationExpires,
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *MySQLUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (s *MySQLUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (s *MySQLUserStore) GetByVerificationCode(ctx context.Context, code string, now time.Time) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE verification_code = ? AND verification_expires > ?`,
		code, now)
	return scanUser(row)
}

func (s *MySQLUserStore) MarkVerified(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET is_verified = 1, verification_code = NULL, verification_expires = NULL WHERE id = ?`,
		id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MySQLUserStore) SetResetToken(ctx context.Context, id int64, token string, expires time.Time) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET reset_token = ?, reset_expires = ? WHERE id = ?`,
		token, expires, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *MySQLUserStore) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_token = ? AND reset_expires > ?`,
		token, now)
	return scanUser(row)
}

func (s *MySQLUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, reset_token = NULL, reset_expires = NULL WHERE id = ?`,
		passwordHash, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateProfile applies a partial update: only non-nil fields are written.
func (s *MySQLUserStore) UpdateProfile(ctx context.Context, id int64, p *models.ProfileUpdate) error {
	if err := models.ValidateProfileUpdate(p); err != nil {
		return err
	}
	var sets []string
	var args []interface{}
	if p.Major != nil {
		sets = append(sets, "major = ?")
		args = append(args, *p.Major)
	}
	if p.ClassStanding != nil {
		sets = append(sets, "class_standing = ?")
		args = append(args, *p.ClassStanding)
	}
	if p.GPA != nil {
		sets = append(sets, "gpa = ?")
		args = append(args, *p.GPA)
	}
	if p.Coursework != nil {
		b, err := json.Marshal(p.Coursework)
		if err != nil {
			return err
		}
		sets = append(sets, "coursework = ?")
		args = append(args, string(b))
	}
	if len(sets) == 0 {
		// nothing to change; still confirm the user exists
		_, err := s.GetByID(ctx, id)
		return err
	}
	args = append(args, id)
	res, err := s.DB.ExecContext(ctx,
		fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", ")), args...)
	if err != nil {
		return err
	}
	// MySQL reports zero affected rows for a no-op update of identical
	// values, so existence is the only thing we can't infer here.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var major, classStanding, coursework, verifCode, resetToken sql.NullString
	var gpa sql.NullFloat64
	var verifExpires, resetExpires sql.NullTime
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsVerified,
		&major, &classStanding, &gpa, &coursework,
		&verifCode, &verifExpires, &resetToken, &resetExpires, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	u.Major = major.String
	u.ClassStanding = classStanding.String
	if gpa.Valid {
		v := gpa.Float64
		u.GPA = &v
	}
	if coursework.Valid && coursework.String != "" {
		if err := json.Unmarshal([]byte(coursework.String), &u.Coursework); err != nil {
			return nil, fmt.Errorf("decode coursework for user %d: %w", u.ID, err)
		}
	}
	u.VerificationCode = verifCode.String
	if verifExpires.Valid {
		t := verifExpires.Time
		u.VerificationExpires = &t
	}
	u.ResetToken = resetToken.String
	if resetExpires.Valid {
		t := resetExpires.Time
		u.ResetExpires = &t
	}
	return &u, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
