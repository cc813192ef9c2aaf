package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	pkgauth "github.com/jwalitptl/healthtrack-api/pkg/auth"
	apperrors "github.com/jwalitptl/healthtrack-api/pkg/errors"
)

type fakeAccountRepo struct {
	accounts map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*model.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if _, ok := f.accounts[account.Username]; ok {
		return apperrors.Conflict("username already exists", nil)
	}
	cp := *account
	f.accounts[account.Username] = &cp
	return nil
}

func (f *fakeAccountRepo) Get(_ context.Context, username string) (*model.Account, error) {
	a, ok := f.accounts[username]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

type fakeRevoker struct {
	revoked map[string]bool
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]bool)}
}

func (f *fakeRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func newTestService() (*Service, *fakeAccountRepo, *fakeRevoker) {
	repo := newFakeAccountRepo()
	revoker := newFakeRevoker()
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	return NewService(repo, jwtSvc, revoker, nil), repo, revoker
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newTestService()

	account, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username:  "somsak",
		Password:  "s3cret",
		FirstName: "Somsak",
		LastName:  "J.",
	})
	require.NoError(t, err)
	assert.Equal(t, "somsak", account.Username)
	assert.NotEqual(t, "s3cret", account.PasswordHash, "password must never be stored in the clear")

	stored, err := repo.Get(context.Background(), "somsak")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "somsak", Password: "a"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &model.RegisterRequest{Username: "somsak", Password: "b"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
}

func TestRegisterBlankUsername(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "   ", Password: "a"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "Somsak", Password: "a"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), &model.RegisterRequest{Username: "somsak", Password: "b"})
	assert.NoError(t, err, "differently-cased usernames are distinct accounts")
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "somsak", Password: "s3cret", FirstName: "Somsak",
	})
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), "somsak", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "somsak", session.Username)
	assert.Equal(t, "Somsak", session.FirstName)

	claims, err := svc.ValidateSession(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, "somsak", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "somsak", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "somsak", "S3CRET")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrUnauthorized, apperrors.CodeOf(err))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "somsak", Password: "s3cret"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), "nobody", "whatever")
	require.Error(t, unknownErr)
	assert.Equal(t, apperrors.ErrUnauthorized, apperrors.CodeOf(unknownErr))

	_, wrongErr := svc.Login(context.Background(), "somsak", "wrong")
	require.Error(t, wrongErr)
	assert.EqualError(t, unknownErr, wrongErr.Error(),
		"unknown username and wrong password must be indistinguishable")
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, revoker := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Username: "somsak", Password: "s3cret"})
	require.NoError(t, err)
	session, err := svc.Login(context.Background(), "somsak", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))
	assert.NotEmpty(t, revoker.revoked)

	_, err = svc.ValidateSession(context.Background(), session.Token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrUnauthorized, apperrors.CodeOf(err))
}

func TestLogoutGarbageTokenIsNoop(t *testing.T) {
	svc, _, revoker := newTestService()

	assert.NoError(t, svc.Logout(context.Background(), "not-a-token"))
	assert.Empty(t, revoker.revoked)
}

func TestValidateSessionRejectsTamperedToken(t *testing.T) {
	svc, _, _ := newTestService()

	otherJWT := pkgauth.NewJWTService("other-secret", time.Hour)
	token, err := otherJWT.GenerateSessionToken("somsak", "Somsak")
	require.NoError(t, err)

	_, err = svc.ValidateSession(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrUnauthorized, apperrors.CodeOf(err))
}
