package menu

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestBuildIsDeterministic(t *testing.T) {
	a, b := Build(), Build()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Build() differs between calls:\n%#v\n%#v", a, b)
	}

	// Mutating one tree must not leak into the next.
	a.Groups[0].Entries[0].Label = "changed"
	if Build().Groups[0].Entries[0].Label != "Open Folder" {
		t.Error("Build() shares state between calls")
	}
}

func TestBuildContents(t *testing.T) {
	type row struct {
		group, id, label, accel string
		kind                    Kind
	}
	want := []row{
		{"File", "open-folder", "Open Folder", "CmdOrCtrl+Shift+O", KindCustom},
		{"File", "new", "New", "CmdOrCtrl+N", KindCustom},
		{"File", "save", "Save", "CmdOrCtrl+S", KindCustom},
		{"File", "", "", "", KindSeparator},
		{"File", "", "Quit", "", KindQuit},
		{"Edit", "undo", "Undo", "CmdOrCtrl+Z", KindCustom},
		{"Edit", "redo", "Redo", "CmdOrCtrl+Shift+Z", KindCustom},
		{"Edit", "", "", "", KindSeparator},
		{"Edit", "", "Cut", "", KindCut},
		{"Edit", "", "Copy", "", KindCopy},
		{"Edit", "", "Paste", "", KindPaste},
		{"View", "toggle-preview", "Toggle Preview", "CmdOrCtrl+E", KindCustom},
		{"View", "toggle-sidebar", "Toggle Sidebar", "CmdOrCtrl+B", KindCustom},
		{"View", "increase-font-size", "Increase Font Size", "CmdOrCtrl+1", KindCustom},
		{"View", "decrease-font-size", "Decrease Font Size", "CmdOrCtrl+-", KindCustom},
	}

	var got []row
	for _, g := range Build().Groups {
		for _, e := range g.Entries {
			got = append(got, row{g.Label, e.ID.String(), e.Label, e.Accelerator, e.Kind})
			if e.Kind == KindCustom && !e.Enabled {
				t.Errorf("%s is disabled", e.ID)
			}
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("menu contents:\n got %v\nwant %v", got, want)
	}
}

func TestDispatchTableCoversMenu(t *testing.T) {
	table := NewDispatchTable()

	var menuIDs, tableIDs []string
	for _, id := range Build().CustomIDs() {
		menuIDs = append(menuIDs, id.String())
	}
	for id := range table {
		tableIDs = append(tableIDs, id)
	}
	sort.Strings(menuIDs)
	sort.Strings(tableIDs)

	if !reflect.DeepEqual(menuIDs, tableIDs) {
		t.Fatalf("menu ids %v != dispatch ids %v", menuIDs, tableIDs)
	}
	for _, id := range Build().CustomIDs() {
		sig, ok := table.Lookup(id.String())
		if !ok || sig != Signal("menu-"+id.String()) {
			t.Errorf("Lookup(%s) = %q, %v", id, sig, ok)
		}
	}
}

// The "open" id had a handler in the original shell but no menu entry could
// emit it. It was dropped rather than given an entry.
func TestOpenIDIsNotDispatched(t *testing.T) {
	if _, ok := NewDispatchTable().Lookup("open"); ok {
		t.Error(`"open" is dispatched but no menu entry emits it`)
	}
	if _, ok := ParseEntryID("open"); ok {
		t.Error(`"open" parses as an entry id`)
	}
}

func TestEntryIDRoundTrip(t *testing.T) {
	for _, id := range AllEntryIDs() {
		parsed, ok := ParseEntryID(id.String())
		if !ok || parsed != id {
			t.Errorf("ParseEntryID(%q) = %v, %v", id.String(), parsed, ok)
		}
		if id.Description() == "" {
			t.Errorf("%s has no description", id)
		}
	}
	if EntryID(0).Valid() || EntryID(100).Valid() {
		t.Error("out of range ids report valid")
	}
}

func TestValidate(t *testing.T) {
	if err := Build().Validate(); err != nil {
		t.Fatalf("Build().Validate() = %v", err)
	}

	cases := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{
			name:    "unmapped id",
			entries: []Entry{{Kind: KindCustom, ID: EntryID(42), Label: "Ghost"}},
			want:    ErrUnmappedEntry,
		},
		{
			name:    "duplicate id",
			entries: []Entry{custom(Save, "Save", ""), custom(Save, "Save again", "")},
			want:    ErrDuplicateEntry,
		},
		{
			name:    "malformed accelerator",
			entries: []Entry{custom(Save, "Save", "Hyper+S")},
			want:    ErrInvalidAccelerator,
		},
		{
			name:    "duplicate accelerator",
			entries: []Entry{custom(Save, "Save", "CmdOrCtrl+S"), custom(New, "New", "cmdorctrl+s")},
			want:    ErrDuplicateAccelerator,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := Spec{Groups: []Group{{Label: "File", Entries: tc.entries}}}
			err := spec.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
			var menuErr *MenuError
			if !errors.As(err, &menuErr) {
				t.Fatalf("Validate() error %T is not a *MenuError", err)
			}
		})
	}
}
