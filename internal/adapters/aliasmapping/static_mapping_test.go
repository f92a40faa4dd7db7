package aliasmapping

import (
	"reflect"
	"testing"

	"github.com/AntonioJCosta/neo/internal/core/domain/operation"
)

func TestNewStaticMapping(t *testing.T) {
	mapping := NewStaticMapping()
	if mapping == nil {
		t.Fatal("NewStaticMapping() returned nil")
	}
	if _, ok := mapping.(*StaticMapping); !ok {
		t.Errorf("NewStaticMapping() did not return a *StaticMapping, got %T", mapping)
	}
}

func TestStaticMapping_AliasesFor(t *testing.T) {
	mapping := NewStaticMapping()
	tests := []struct {
		name string
		op   operation.Operation
		want []string
	}{
		{name: "file read", op: operation.FileRead, want: []string{"file-read"}},
		{name: "file copy", op: operation.FileCopy, want: []string{"file-copy"}},
		{name: "fallback has no aliases", op: operation.CommandRun, want: []string{}},
		{name: "out of range operation", op: operation.Operation(42), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := mapping.AliasesFor(tt.op)
			second := mapping.AliasesFor(tt.op)
			if !reflect.DeepEqual(first, tt.want) {
				t.Errorf("AliasesFor(%v) = %#v, want %#v", tt.op, first, tt.want)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("AliasesFor(%v) not deterministic: %#v then %#v", tt.op, first, second)
			}
		})
	}
}

func TestStaticMapping_AliasesForReturnsCopy(t *testing.T) {
	mapping := NewStaticMapping()
	got := mapping.AliasesFor(operation.FileRead)
	got[0] = "mutated"

	if again := mapping.AliasesFor(operation.FileRead); again[0] != "file-read" {
		t.Errorf("caller mutation leaked into the alias table: %#v", again)
	}
}
