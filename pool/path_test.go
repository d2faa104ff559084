package pool

import (
	"sync"
	"testing"
)

func TestPathBuilder_FieldIndex(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.Field("Claim")
	pb.Field("item")
	pb.Index(2)
	pb.Field("servicedDate")

	if got := pb.String(); got != "Claim.item[2].servicedDate" {
		t.Errorf("String() = %q; want %q", got, "Claim.item[2].servicedDate")
	}
}

func TestPathBuilder_Sidecar(t *testing.T) {
	tests := []struct {
		build func(pb *PathBuilder)
		want  string
	}{
		{func(pb *PathBuilder) { pb.Field("Patient"); pb.Field("birthDate") }, "Patient._birthDate"},
		{func(pb *PathBuilder) { pb.Field("HumanName"); pb.Field("given"); pb.Index(3) }, "HumanName._given[3]"},
		{func(pb *PathBuilder) { pb.Field("Date") }, "_Date"},
	}
	for _, tt := range tests {
		pb := AcquirePathBuilder()
		tt.build(pb)
		before := pb.String()

		mark := pb.Sidecar()
		if got := pb.String(); got != tt.want {
			t.Errorf("Sidecar() = %q; want %q", got, tt.want)
		}
		m := pb.Field("extension")
		pb.Truncate(m)
		pb.Unsidecar(mark)
		if got := pb.String(); got != before {
			t.Errorf("Unsidecar() = %q; want %q", got, before)
		}
		pb.Release()
	}
}

func TestPathBuilder_Truncate(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.Field("Patient")
	m1 := pb.Field("name")
	m2 := pb.Index(1)
	pb.Field("given")

	pb.Truncate(m2)
	if got := pb.String(); got != "Patient.name" {
		t.Errorf("after Truncate(m2) = %q; want %q", got, "Patient.name")
	}
	pb.Truncate(m1)
	if got := pb.String(); got != "Patient" {
		t.Errorf("after Truncate(m1) = %q; want %q", got, "Patient")
	}

	pb.Truncate(100)
	if got := pb.String(); got != "Patient" {
		t.Errorf("Truncate beyond Len changed path to %q", got)
	}
}

func TestPathBuilder_Reset(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.Field("Bundle")
	pb.Reset()
	if pb.Len() != 0 {
		t.Errorf("Len() after Reset() = %d; want 0", pb.Len())
	}
	pb.Field("Condition")
	if got := pb.String(); got != "Condition" {
		t.Errorf("String() = %q; want %q", got, "Condition")
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"Patient"}, "Patient"},
		{[]string{"Patient", "contact", "name"}, "Patient.contact.name"},
	}

	for _, tt := range tests {
		if got := JoinPath(tt.segments...); got != tt.want {
			t.Errorf("JoinPath(%v) = %q; want %q", tt.segments, got, tt.want)
		}
	}
}

func TestIndexPath(t *testing.T) {
	if got := IndexPath("Bundle.entry", 3); got != "Bundle.entry[3]" {
		t.Errorf("IndexPath() = %q; want %q", got, "Bundle.entry[3]")
	}
}

func TestPathBuilder_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got := BuildPath(func(b *PathBuilder) {
				b.Field("Claim")
				b.Field("item")
				b.Index(i)
			})
			if want := IndexPath("Claim.item", i); got != want {
				t.Errorf("BuildPath() = %q; want %q", got, want)
			}
		}(i)
	}
	wg.Wait()
}
