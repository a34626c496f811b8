package auth

import (
	"context"
	"time"

	"tajobs/internal/models"
	"tajobs/internal/store"
)

// in-memory UserStore honoring the same semantics as the MySQL one
type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) (int64, error) {
	if err := models.ValidateNewUser(u); err != nil {
		return 0, err
	}
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return 0, store.ErrDuplicateEmail
		}
	}
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.users[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByVerificationCode(ctx context.Context, code string, now time.Time) (*models.User, error) {
	for _, u := range f.users {
		if u.VerificationCode == code && u.VerificationExpires != nil && u.VerificationExpires.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) MarkVerified(ctx context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.IsVerified = true
	u.VerificationCode = ""
	u.VerificationExpires = nil
	return nil
}

func (f *fakeUserStore) SetResetToken(ctx context.Context, id int64, token string, expires time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.ResetToken = token
	u.ResetExpires = &expires
	return nil
}

func (f *fakeUserStore) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	for _, u := range f.users {
		if u.ResetToken == token && u.ResetExpires != nil && u.ResetExpires.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = hash
	u.ResetToken = ""
	u.ResetExpires = nil
	return nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id int64, p *models.ProfileUpdate) error {
	if err := models.ValidateProfileUpdate(p); err != nil {
		return err
	}
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if p.Major != nil {
		u.Major = *p.Major
	}
	if p.ClassStanding != nil {
		u.ClassStanding = *p.ClassStanding
	}
	if p.GPA != nil {
		u.GPA = p.GPA
	}
	if p.Coursework != nil {
		u.Coursework = p.Coursework
	}
	return nil
}

type sentMail struct {
	kind string
	to   string
	body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendVerification(ctx context.Context, to, code string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: "verification", to: to, body: code})
	return nil
}

func (m *fakeMailer) SendWelcome(ctx context.Context, to, name string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: "welcome", to: to, body: name})
	return nil
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: "reset", to: to, body: resetURL})
	return nil
}

func (m *fakeMailer) SendResetConfirmation(ctx context.Context, to string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: "reset-confirmation", to: to})
	return nil
}
