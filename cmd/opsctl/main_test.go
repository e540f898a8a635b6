package main

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/core/services"
	"ml-classroom-service/internal/testutil"
)

type fakeChecker struct {
	results []domain.CredentialsCheckResult
	err     error
}

func (f *fakeChecker) CheckAll(ctx context.Context) ([]domain.CredentialsCheckResult, error) {
	return f.results, f.err
}

func runCLI(t *testing.T, ctx *commandContext, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(ctx)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testContext() *commandContext {
	return &commandContext{
		newChecker: func(ctx context.Context, opts services.CheckOptions) (services.CredentialsChecker, error) {
			return nil, errors.New("no checker configured")
		},
		newInspector: func(ctx context.Context) (ports.DatabaseInspector, error) {
			return nil, errors.New("no inspector configured")
		},
	}
}

func TestCredentialsCheck_AllOK(t *testing.T) {
	ctx := testContext()
	var gotOpts services.CheckOptions
	ctx.newChecker = func(_ context.Context, opts services.CheckOptions) (services.CredentialsChecker, error) {
		gotOpts = opts
		return &fakeChecker{results: []domain.CredentialsCheckResult{
			{CredentialsID: uuid.New(), ClassID: "class-1", ServiceType: domain.ServiceTypeConversation, URL: "https://ml.example.com/", OK: true, StatusCode: 200, Latency: 42 * time.Millisecond},
		}}, nil
	}

	out, err := runCLI(t, ctx, "credentials", "check", "--concurrency", "4", "--rate", "0.5")

	require.NoError(t, err)
	assert.Equal(t, 4, gotOpts.Concurrency)
	assert.Equal(t, 0.5, gotOpts.Rate)
	assert.Contains(t, out, "class-1")
	assert.Contains(t, out, "OK 200")
	assert.Contains(t, out, "1 checked, 0 failed")
}

func TestCredentialsCheck_FailureExitsNonZero(t *testing.T) {
	ctx := testContext()
	ctx.newChecker = func(context.Context, services.CheckOptions) (services.CredentialsChecker, error) {
		return &fakeChecker{results: []domain.CredentialsCheckResult{
			{CredentialsID: uuid.New(), ClassID: "class-1", OK: true, StatusCode: 200},
			{CredentialsID: uuid.New(), ClassID: "class-2", Error: domain.ErrCredentialsRejected.Error()},
		}}, nil
	}

	out, err := runCLI(t, ctx, "credentials", "check")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 credentials failed")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "credentials rejected by service")
}

func TestCredentialsCheck_DefaultFlagsDeferToConfig(t *testing.T) {
	ctx := testContext()
	var gotOpts services.CheckOptions
	ctx.newChecker = func(_ context.Context, opts services.CheckOptions) (services.CredentialsChecker, error) {
		gotOpts = opts
		return &fakeChecker{}, nil
	}

	out, err := runCLI(t, ctx, "credentials", "check")

	require.NoError(t, err)
	assert.Equal(t, 0, gotOpts.Concurrency)
	assert.Less(t, gotOpts.Rate, 0.0)
	assert.Contains(t, out, "No credentials stored")
}

func TestCredentialsCheck_CheckerError(t *testing.T) {
	ctx := testContext()
	ctx.newChecker = func(context.Context, services.CheckOptions) (services.CredentialsChecker, error) {
		return &fakeChecker{err: errors.New("db down")}, nil
	}

	_, err := runCLI(t, ctx, "credentials", "check")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestDBSmoke(t *testing.T) {
	ctx := testContext()
	inspector := new(testutil.MockDatabaseInspector)
	inspector.On("Smoke", mock.Anything).Return([]ports.TableCount{
		{Table: "projects", Rows: 1234},
		{Table: "trainingitems", Rows: 0},
	}, nil)
	ctx.newInspector = func(context.Context) (ports.DatabaseInspector, error) {
		return inspector, nil
	}

	out, err := runCLI(t, ctx, "db", "smoke")

	require.NoError(t, err)
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "Database OK")
	inspector.AssertExpectations(t)
}

func TestDBSmoke_Error(t *testing.T) {
	ctx := testContext()
	inspector := new(testutil.MockDatabaseInspector)
	inspector.On("Smoke", mock.Anything).Return(nil, errors.New("connection refused"))
	ctx.newInspector = func(context.Context) (ports.DatabaseInspector, error) {
		return inspector, nil
	}

	_, err := runCLI(t, ctx, "db", "smoke")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRandomCommand(t *testing.T) {
	out, err := runCLI(t, testContext(), "random", "5")
	require.NoError(t, err)

	fields := strings.Fields(out)
	require.Len(t, fields, 5)
	total := 0
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		require.NoError(t, err)
		assert.Positive(t, n)
		total += n
	}
	assert.Equal(t, 100, total)
}

func TestRandomCommand_InvalidCount(t *testing.T) {
	_, err := runCLI(t, testContext(), "random", "0")
	assert.Error(t, err)

	_, err = runCLI(t, testContext(), "random", "many")
	assert.Error(t, err)
}

func TestURLCommand(t *testing.T) {
	out, err := runCLI(t, testContext(), "url", "  HTTP://Example.COM/a b#frag ")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a%20b\n", out)

	_, err = runCLI(t, testContext(), "url", "ftp://example.com/file")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]column{leftColumn("A"), rightColumn("B")}, [][]string{{"x"}, {"y", "z"}})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "z")
	assert.Empty(t, renderTable(nil, nil))
}
