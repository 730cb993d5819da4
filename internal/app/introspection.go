package app

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"go.yaml.in/yaml/v3"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs the introspection report as YAML once the app is initialized.
type ReportLoggerIntrospector struct {
	Logger *log.Logger `resolve:""`
}

type reportSummary struct {
	Initializers []string        `yaml:"initializers"`
	Runners      []string        `yaml:"runners"`
	Configs      []configSummary `yaml:"configs"`
	Deps         []depSummary    `yaml:"deps"`
}

type configSummary struct {
	Key         string `yaml:"key"`
	Provider    string `yaml:"provider"`
	UsedDefault bool   `yaml:"usedDefault"`
	Component   string `yaml:"component,omitempty"`
}

type depSummary struct {
	Kind      string `yaml:"kind"`
	Type      string `yaml:"type"`
	Impl      string `yaml:"impl,omitempty"`
	Component string `yaml:"component,omitempty"`
}

func summarize(r introspection.Report) reportSummary {
	s := reportSummary{}
	for _, init := range r.Initializers {
		s.Initializers = append(s.Initializers, init.Type)
	}
	for _, rn := range r.Runners {
		s.Runners = append(s.Runners, rn.Type)
	}
	for _, c := range r.Configs {
		s.Configs = append(s.Configs, configSummary{
			Key:         c.Key,
			Provider:    c.Provider,
			UsedDefault: c.UsedDefault,
			Component:   c.Component,
		})
	}
	for _, d := range r.Deps {
		s.Deps = append(s.Deps, depSummary{
			Kind:      string(d.Kind),
			Type:      d.Type,
			Impl:      d.Impl,
			Component: d.Component,
		})
	}
	return s
}

// Introspect marshals the report and writes it to the logger.
func (i *ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	b, err := yaml.Marshal(summarize(r))
	if err != nil {
		return fmt.Errorf("marshal introspection report: %w", err)
	}
	i.Logger.Println("=== BOOKING INTROSPECTION REPORT ===")
	i.Logger.Println(string(b))
	i.Logger.Println("=== END OF REPORT ===")
	return nil
}
