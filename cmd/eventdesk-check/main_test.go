package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/geocoder89/eventdesk/internal/repo/textfile"
	"github.com/geocoder89/eventdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, events, regs string) (*service.Service, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.txt"), []byte(events), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "registrations.txt"), []byte(regs), 0o644))

	return service.New(service.Deps{
		Events:        textfile.NewEventsRepo(filepath.Join(dir, "events.txt"), nil, nil),
		Registrations: textfile.NewRegistrationsRepo(filepath.Join(dir, "registrations.txt"), nil, nil),
	}), dir
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	svc, dir := newService(t,
		"Tech Fest|15-03-2025|Hall A|2|0\n",
		"john|Tech Fest|15-03-2025 10:00\nkim|Old Event|15-03-2025 10:01\n",
	)

	var out bytes.Buffer
	code, err := check(ctx, svc, false, &out)
	require.NoError(t, err)
	assert.Equal(t, exitDrift, code)
	assert.Contains(t, out.String(), `count mismatch: "Tech Fest" stores 0, ledger has 1`)
	assert.Contains(t, out.String(), `dangling registration: kim -> "Old Event"`)

	out.Reset()
	code, err = check(ctx, svc, true, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "repaired")

	b, err := os.ReadFile(filepath.Join(dir, "events.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Tech Fest|15-03-2025|Hall A|2|1\n", string(b))

	out.Reset()
	code, err = check(ctx, svc, false, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "ok:")
}
