package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cdr.dev/slog"
	tassert "github.com/stretchr/testify/assert"

	"oss.terrastruct.com/csspos/lib/env"
	"oss.terrastruct.com/csspos/lib/log"
)

func TestHuman(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := log.Human(context.Background(), &buf, false)
	log.Debug(ctx, "quiet line")
	log.Info(ctx, "resolved position", slog.F("point", "(1, 2)"))
	log.Sync(ctx)

	out := buf.String()
	tassert.Contains(t, out, "resolved position")
	tassert.Contains(t, out, "(1, 2)")
	if !env.Debug() {
		tassert.NotContains(t, out, "quiet line")
	}

	buf.Reset()
	ctx = log.Named(log.Human(context.Background(), &buf, true), "csspos")
	log.Debug(ctx, "loud line")
	log.Sync(ctx)
	tassert.True(t, strings.Contains(buf.String(), "loud line"), buf.String())
	tassert.Contains(t, buf.String(), "csspos")
}

func TestWithTB(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	log.Info(ctx, "logged through testing.TB")
}
