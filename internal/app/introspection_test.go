package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	var buf bytes.Buffer
	introspector := &ReportLoggerIntrospector{Logger: log.New(&buf, "", 0)}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "DB_DRIVER", Provider: "env", UsedDefault: true},
		},
		Deps: []introspection.DepEvent{
			{Kind: introspection.DepRegistered, Type: "domain.TaskQueue", Impl: "*queue.TaskQueue"},
		},
		Runners: []introspection.RunnerInfo{
			{Type: "*workers.BackgroundWorker"},
		},
	}

	err := introspector.Introspect(context.Background(), report)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BOOKING INTROSPECTION REPORT")
	assert.Contains(t, out, "key: DB_DRIVER")
	assert.Contains(t, out, "usedDefault: true")
	assert.Contains(t, out, "*queue.TaskQueue")
	assert.Contains(t, out, "*workers.BackgroundWorker")
}
