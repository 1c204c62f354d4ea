package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/models"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	err := repo.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h1", AuthToken: "t1"})
	require.NoError(t, err)

	user, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", user.PasswordHash)
	assert.Equal(t, "t1", user.AuthToken)
	assert.False(t, user.CreatedAt.IsZero())

	byToken, err := repo.FindUserByToken(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byToken.Username)
}

func TestMemoryUserRepository_DuplicateLeavesFirstUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	require.NoError(t, repo.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "first", AuthToken: "t1"}))

	err := repo.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "second", AuthToken: "t2"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	user, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", user.PasswordHash)
	assert.Equal(t, "t1", user.AuthToken)

	_, err = repo.FindUserByToken(ctx, "t2")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	_, err := repo.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.FindUserByToken(ctx, "")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.FindUserByToken(ctx, "nope")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	err = repo.UpdateAuthToken(ctx, "ghost", "t")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryUserRepository_UpdateTokenInvalidatesPrevious(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	require.NoError(t, repo.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", AuthToken: "t1"}))
	require.NoError(t, repo.UpdateAuthToken(ctx, "alice", "t2"))

	_, err := repo.FindUserByToken(ctx, "t1")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	user, err := repo.FindUserByToken(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "t2", user.AuthToken)
}

func TestMemoryUserRepository_ConcurrentSignupSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.CreateUser(ctx, models.User{Username: "alice", AuthToken: fmt.Sprintf("t%d", i)})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestMemoryUserRepository_ConcurrentLogins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())
	require.NoError(t, repo.CreateUser(ctx, models.User{Username: "alice", AuthToken: "t0"}))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.UpdateAuthToken(ctx, "alice", fmt.Sprintf("t%d", i))
			_, _ = repo.FindUserByToken(ctx, fmt.Sprintf("t%d", i))
		}(i)
	}
	wg.Wait()

	user, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)

	// exactly one token resolves: the current one
	resolved := 0
	for i := 0; i <= 50; i++ {
		if _, err := repo.FindUserByToken(ctx, fmt.Sprintf("t%d", i)); err == nil {
			resolved++
		}
	}
	assert.Equal(t, 1, resolved)

	found, err := repo.FindUserByToken(ctx, user.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
}

func TestMemoryPlanRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPlanRepository(logger.Nop())

	_, err := repo.GetPlan(ctx, "alice")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	first := samplePlan()
	require.NoError(t, repo.SavePlan(ctx, first))

	second := samplePlan()
	second.YearlyGoal = "Ship a project"
	second.Months = models.PlanJSON{"1": {MonthlyGoal: "Other", Weekly: []string{"w1", "w2", "w3", "w4"}}}
	require.NoError(t, repo.SavePlan(ctx, second))

	got, err := repo.GetPlan(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Ship a project", got.YearlyGoal)
	assert.Equal(t, "Other", got.Months["1"].MonthlyGoal)
	assert.False(t, got.CreatedAt.IsZero())

	// returned plan is a copy
	got.Months["2"] = models.MonthPlan{MonthlyGoal: "mutated"}
	again, err := repo.GetPlan(ctx, "alice")
	require.NoError(t, err)
	_, ok := again.Months["2"]
	assert.False(t, ok)
}
