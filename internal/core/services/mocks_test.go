package services

import (
	"context"
	"errors"
	"time"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
)

var errStoreDown = errors.New("store unavailable")

// failingProductStore wraps a real store and fails selected operations.
type failingProductStore struct {
	driven.ProductStore
	createErr error
	listErr   error
	writes    int
}

func (s *failingProductStore) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	s.writes++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.ProductStore.Create(ctx, p)
}

func (s *failingProductStore) Update(ctx context.Context, id int64, p domain.Product) (*domain.Product, error) {
	s.writes++
	return s.ProductStore.Update(ctx, id, p)
}

func (s *failingProductStore) Delete(ctx context.Context, id int64) error {
	s.writes++
	return s.ProductStore.Delete(ctx, id)
}

func (s *failingProductStore) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	if s.listErr != nil {
		return domain.Page[domain.Product]{}, s.listErr
	}
	return s.ProductStore.List(ctx, req)
}

// racingLocationStore reports every location as free but rejects the write,
// as a store does when a concurrent subscribe committed first.
type racingLocationStore struct {
	driven.LocationStore
}

func (racingLocationStore) ProductAssigned(context.Context, int64) (bool, error) { return false, nil }
func (racingLocationStore) Occupied(context.Context, int64) (bool, error)        { return false, nil }
func (racingLocationStore) AssignProduct(context.Context, domain.Location) (*domain.Location, error) {
	return nil, domain.ErrAlreadyExists
}

// countingLocationStore records calls so tests can assert the check order.
type countingLocationStore struct {
	driven.LocationStore
	calls []string
}

func (s *countingLocationStore) ProductAssigned(ctx context.Context, id int64) (bool, error) {
	s.calls = append(s.calls, "ProductAssigned")
	return s.LocationStore.ProductAssigned(ctx, id)
}

func (s *countingLocationStore) Occupied(ctx context.Context, id int64) (bool, error) {
	s.calls = append(s.calls, "Occupied")
	return s.LocationStore.Occupied(ctx, id)
}

func (s *countingLocationStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.calls = append(s.calls, "Exists")
	return s.LocationStore.Exists(ctx, id)
}

func (s *countingLocationStore) Get(ctx context.Context, id int64) (*domain.Location, error) {
	s.calls = append(s.calls, "Get")
	return s.LocationStore.Get(ctx, id)
}

func (s *countingLocationStore) AssignProduct(ctx context.Context, l domain.Location) (*domain.Location, error) {
	s.calls = append(s.calls, "AssignProduct")
	return s.LocationStore.AssignProduct(ctx, l)
}

func (s *countingLocationStore) ClearProduct(ctx context.Context, id int64) (*domain.Location, error) {
	s.calls = append(s.calls, "ClearProduct")
	return s.LocationStore.ClearProduct(ctx, id)
}

// fakeTokenIssuer issues predictable tokens of the form "<kind>:<username>".
type fakeTokenIssuer struct {
	ttl time.Duration
}

func (f fakeTokenIssuer) Issue(username string, now time.Time) (*domain.Token, error) {
	return &domain.Token{
		Username:      username,
		Authenticated: true,
		Created:       now,
		Expiration:    now.Add(f.ttl),
		AccessToken:   string(domain.TokenKindAccess) + ":" + username,
		RefreshToken:  string(domain.TokenKindRefresh) + ":" + username,
	}, nil
}

func (f fakeTokenIssuer) Verify(token string, kind domain.TokenKind) (*domain.Principal, error) {
	prefix := string(kind) + ":"
	if token == "expired" {
		return nil, domain.NewAuthError(domain.ErrAuthExpired, domain.InvalidToken)
	}
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return nil, domain.NewAuthError(domain.ErrAuthInvalid, domain.InvalidToken)
	}
	return &domain.Principal{Username: token[len(prefix):], Kind: kind}, nil
}

// plainHasher stores passwords with a marker prefix.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}
