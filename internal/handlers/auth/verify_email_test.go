package auth

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tajobs/internal/models"
)

func doVerify(h *VerifyEmailHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/verify-email", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestVerifyEmail_Success(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	mail := &fakeMailer{}
	id := seedUser(t, users, "a@x.com", "pw123456", models.RoleStudent, false)
	h := &VerifyEmailHandler{Users: users, Mail: mail}

	rec := doVerify(h, `{"code":"123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	u, err := users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
	assert.Empty(t, u.VerificationCode)
	assert.Nil(t, u.VerificationExpires)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "welcome", mail.sent[0].kind)
	assert.Equal(t, "a@x.com", mail.sent[0].to)
}

func TestVerifyEmail_WrongCode(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	seedUser(t, users, "a@x.com", "pw123456", models.RoleStudent, false)
	h := &VerifyEmailHandler{Users: users, Mail: &fakeMailer{}}

	rec := doVerify(h, `{"code":"000000"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid verification code")
}

func TestVerifyEmail_ExpiredCode(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	id := seedUser(t, users, "a@x.com", "pw123456", models.RoleStudent, false)
	past := time.Now().Add(-time.Minute)
	users.users[id].VerificationExpires = &past
	h := &VerifyEmailHandler{Users: users, Mail: &fakeMailer{}}

	rec := doVerify(h, `{"code":"123456"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid verification code")

	u, err := users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, u.IsVerified)
}
