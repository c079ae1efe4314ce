package organize_test

import (
	"path/filepath"
	"testing"

	"specsort/internal/classify"
	"specsort/internal/organize"
	"specsort/internal/testsupport"
)

func TestPlanFileDestinations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cases := []struct {
		name string
		kind classify.Kind
		dest string
	}{
		{"s0p0-a1-t1_1.txt", classify.KindSample, filepath.Join("s0p0", "t1", "s0p0-a1-t1.txt")},
		{"dhpb-d4-t3_1.txt", classify.KindSample, filepath.Join("dhpb", "t3", "dhpb-d4-t3.txt")},
		{"t1_1.txt", classify.KindReference, filepath.Join("tol", "t1.tol")},
		{"t2-a1-b2_1.txt", classify.KindReference, filepath.Join("tol", "t2.tol")},
		{"calibration.SPE", classify.KindBinary, ""},
		{"exp.dat", classify.KindExcluded, ""},
		{"nohyphen_1.txt", classify.KindMalformed, ""},
	}
	for _, tc := range cases {
		plan := organize.PlanFile(tc.name, cfg)
		if plan.Classification.Kind != tc.kind {
			t.Errorf("PlanFile(%q).Kind = %s, want %s", tc.name, plan.Classification.Kind, tc.kind)
		}
		if plan.Destination != tc.dest {
			t.Errorf("PlanFile(%q).Destination = %q, want %q", tc.name, plan.Destination, tc.dest)
		}
	}
}

func TestPlanDirSkipsDirectoriesAndSortsNumerically(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "s0p10-a1-t1_1.txt"), "a")
	testsupport.WriteFile(t, filepath.Join(root, "s0p2-a1-t1_1.txt"), "b")
	testsupport.WriteFile(t, filepath.Join(root, "tol", "t9.tol"), "nested, must be ignored")
	testsupport.WriteFile(t, filepath.Join(root, ".specsort.lock"), "")
	testsupport.WriteFile(t, filepath.Join(root, ".stray"), "hidden, must be ignored")

	plans, err := organize.PlanDir(root, cfg)
	if err != nil {
		t.Fatalf("PlanDir: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len = %d, want 2 (subdirectories and hidden files must not be planned)", len(plans))
	}
	if plans[0].Name != "s0p2-a1-t1_1.txt" || plans[1].Name != "s0p10-a1-t1_1.txt" {
		t.Errorf("order = %q, %q; want numeric order s0p2 before s0p10", plans[0].Name, plans[1].Name)
	}
}
