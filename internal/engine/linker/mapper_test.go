package linker_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/engine/linker"
)

func links(pairs ...any) *domain.Links {
	l := domain.NewLinks()
	for i := 0; i+1 < len(pairs); i += 2 {
		l.Add(pairs[i].(string), pairs[i+1].([]string)...)
	}
	return l
}

func TestMapBySource(t *testing.T) {
	tests := []struct {
		name     string
		byTarget *domain.Links
		wantKeys []string
		want     map[string][]string
	}{
		{
			name:     "shared source",
			byTarget: links("A", []string{"X", "Y"}, "B", []string{"X"}),
			wantKeys: []string{"/work/X", "/work/Y"},
			want: map[string][]string{
				"/work/X": {"/work/A", "/work/B"},
				"/work/Y": {"/work/A"},
			},
		},
		{
			name:     "single pair",
			byTarget: links("./app", []string{"../lib"}),
			wantKeys: []string{"/lib"},
			want: map[string][]string{
				"/lib": {"/work/app"},
			},
		},
		{
			name:     "duplicate source in one target",
			byTarget: links("A", []string{"X", "X"}),
			wantKeys: []string{"/work/X"},
			want: map[string][]string{
				"/work/X": {"/work/A"},
			},
		},
		{
			name:     "paths resolving to the same target are deduplicated",
			byTarget: links("A", []string{"X"}, "./A/", []string{"X"}, "/work/A", []string{"X"}),
			wantKeys: []string{"/work/X"},
			want: map[string][]string{
				"/work/X": {"/work/A"},
			},
		},
		{
			name:     "absolute paths are kept",
			byTarget: links("/srv/app", []string{"/opt/lib//x/"}),
			wantKeys: []string{"/opt/lib/x"},
			want: map[string][]string{
				"/opt/lib/x": {"/srv/app"},
			},
		},
		{
			name:     "source order follows first appearance",
			byTarget: links("B", []string{"Z"}, "A", []string{"Y", "Z"}),
			wantKeys: []string{"/work/Z", "/work/Y"},
			want: map[string][]string{
				"/work/Z": {"/work/B", "/work/A"},
				"/work/Y": {"/work/A"},
			},
		},
		{
			name:     "target without sources",
			byTarget: links("A", []string{}),
			wantKeys: []string{},
			want:     map[string][]string{},
		},
		{
			name:     "empty",
			byTarget: domain.NewLinks(),
			wantKeys: []string{},
			want:     map[string][]string{},
		},
		{
			name:     "nil",
			byTarget: nil,
			wantKeys: []string{},
			want:     map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linker.MapBySource("/work", tt.byTarget)

			assert.Equal(t, tt.wantKeys, got.Keys())

			gotMap := make(map[string][]string)
			for source, targets := range got.All() {
				gotMap[source] = targets
			}
			assert.Equal(t, tt.want, gotMap)
		})
	}
}

func TestMapBySource_EveryPairIsRepresented(t *testing.T) {
	byTarget := domain.NewLinks()
	for i := range 5 {
		for j := range 4 {
			byTarget.Add(fmt.Sprintf("app-%d", i), fmt.Sprintf("lib-%d", (i+j)%6))
		}
	}

	got := linker.MapBySource("/work", byTarget)

	for target, sources := range byTarget.All() {
		for _, source := range sources {
			assert.Contains(t, got.Get("/work/"+source), "/work/"+target)
		}
	}

	for _, targets := range got.All() {
		seen := make(map[string]bool)
		for _, target := range targets {
			assert.False(t, seen[target], "duplicate target %s", target)
			seen[target] = true
		}
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "/work", path: "app", want: "/work/app"},
		{base: "/work", path: "./app/", want: "/work/app"},
		{base: "/work", path: "../lib", want: "/lib"},
		{base: "/work", path: "/abs/./x", want: "/abs/x"},
		{base: "/work", path: "", want: "/work"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := linker.ResolvePath(tt.base, tt.path)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, linker.ResolvePath(tt.base, got), "resolution must be idempotent")
		})
	}
}
