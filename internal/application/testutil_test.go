package application

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/memory"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

func init() {
	helpers.BcryptCost = bcrypt.MinCost
}

type fixture struct {
	users    *memory.UserRepository
	profiles *memory.ProfileRepository
	posts    *memory.PostRepository
	mail     *fakePublisher
	index    *fakeIndex

	auth    *AuthService
	post    *PostService
	profile *ProfileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := helpers.NewNopLogger()
	f := &fixture{
		users:    memory.NewUserRepository(),
		profiles: memory.NewProfileRepository(),
		posts:    memory.NewPostRepository(),
		mail:     &fakePublisher{},
		index:    newFakeIndex(),
	}
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	f.auth = NewAuthService(f.users, jwt, f.mail, "DevConnector", log)
	f.post = NewPostService(f.posts, f.users, log)
	f.profile = NewProfileService(f.profiles, f.users, f.index, log)
	return f
}

// register creates a user and returns its id.
func (f *fixture) register(t *testing.T, name, email string) string {
	t.Helper()
	_, u, err := f.auth.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "secret123"})
	require.NoError(t, err)
	return u.ID
}

type fakePublisher struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

type fakeIndex struct {
	mu   sync.Mutex
	docs map[string]*entity.Profile
}

func newFakeIndex() *fakeIndex { return &fakeIndex{docs: map[string]*entity.Profile{}} }

func (i *fakeIndex) Index(_ context.Context, p *entity.Profile) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs[p.User.ID] = p.Clone()
	return nil
}

func (i *fakeIndex) Remove(_ context.Context, userID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.docs, userID)
	return nil
}

func (i *fakeIndex) Search(_ context.Context, q string, _ int) ([]*entity.Profile, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := []*entity.Profile{}
	for _, p := range i.docs {
		if p.Status == q {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

type fakeRepos struct {
	calls int
	body  json.RawMessage
	err   error
}

func (r *fakeRepos) Repos(_ context.Context, _ string) (json.RawMessage, error) {
	r.calls++
	return r.body, r.err
}
