package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/curio-svc/curio/internal/errs"
	"github.com/curio-svc/curio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	byID    map[int64]*model.User
	byEmail map[string]*model.User
	nextID  int64
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[int64]*model.User{},
		byEmail: map[string]*model.User{},
		nextID:  1,
	}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, skip, limit int) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	users := []model.User{}
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.byID[id]; ok {
			users = append(users, *u)
		}
	}
	if skip >= len(users) {
		return []model.User{}, nil
	}
	users = users[skip:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user.ID = f.nextID
	user.IsActive = true
	f.nextID++
	cp := *user
	f.byID[user.ID] = &cp
	f.byEmail[user.Email] = &cp
	return user, nil
}

// fakeItemRepo is an in-memory ItemRepository for service tests.
type fakeItemRepo struct {
	items  []model.Item
	nextID int64
	err    error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{nextID: 1}
}

func (f *fakeItemRepo) List(_ context.Context, skip, limit int) ([]model.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := f.items
	if skip >= len(items) {
		return []model.Item{}, nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return append([]model.Item{}, items...), nil
}

func (f *fakeItemRepo) ListByOwner(_ context.Context, ownerID int64) ([]model.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	owned := []model.Item{}
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			owned = append(owned, item)
		}
	}
	return owned, nil
}

func (f *fakeItemRepo) Create(_ context.Context, item *model.Item) (*model.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = f.nextID
	f.nextID++
	f.items = append(f.items, *item)
	return item, nil
}

func newUserService() (*UserService, *fakeUserRepo, *fakeItemRepo) {
	users := newFakeUserRepo()
	items := newFakeItemRepo()
	return NewUserService(users, items), users, items
}

func TestUserService_Create(t *testing.T) {
	svc, _, _ := newUserService()

	got, err := svc.Create(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.User.ID)
	assert.Equal(t, "alice@example.com", got.User.Email)
	assert.True(t, got.User.IsActive)
	assert.Empty(t, got.Items)

	// stored credential is a bcrypt hash of the input, not the input
	assert.NotEqual(t, "s3cret", got.User.HashedPassword)
	err = bcrypt.CompareHashAndPassword([]byte(got.User.HashedPassword), []byte("s3cret"))
	assert.NoError(t, err)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.Create(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "alice@example.com", "other")
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", httpErr.Code)
	assert.Equal(t, "Email already registered", httpErr.Message)
}

func TestUserService_Create_RepoErrorPropagates(t *testing.T) {
	svc, users, _ := newUserService()
	users.err = errors.New("db down")

	_, err := svc.Create(context.Background(), "alice@example.com", "s3cret")
	require.Error(t, err)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)
}

func TestUserService_Get_NestsItems(t *testing.T) {
	svc, _, items := newUserService()

	created, err := svc.Create(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = items.Create(context.Background(), &model.Item{Title: "Lamp", OwnerID: created.User.ID})
	require.NoError(t, err)
	_, err = items.Create(context.Background(), &model.Item{Title: "Clock", OwnerID: 999})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.User.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Lamp", got.Items[0].Title)
	assert.Equal(t, created.User.ID, got.Items[0].OwnerID)
}

func TestUserService_List_SkipLimit(t *testing.T) {
	svc, _, _ := newUserService()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Create(context.Background(), email, "pw")
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)

	emails := map[string]bool{}
	for _, u := range all {
		emails[u.User.Email] = true
	}
	assert.Equal(t, map[string]bool{
		"a@example.com": true,
		"b@example.com": true,
		"c@example.com": true,
	}, emails)

	one, err := svc.List(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}
