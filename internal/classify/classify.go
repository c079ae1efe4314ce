package classify

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Kind identifies the action the organizer should take for a filename.
type Kind int

const (
	// KindBinary marks instrument-proprietary files slated for deletion.
	KindBinary Kind = iota
	// KindExcluded marks files the organizer must never touch.
	KindExcluded
	// KindReference marks toluene reference spectra destined for the reference dir.
	KindReference
	// KindSample marks sample spectra destined for the per-sample tree.
	KindSample
	// KindMalformed marks names that do not follow the acquisition convention.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindExcluded:
		return "excluded"
	case KindReference:
		return "reference"
	case KindSample:
		return "sample"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Classification is the tagged result of classifying a single filename.
// Tag is set for references, Prefix/Info/Tag for samples, Reason for
// malformed names.
type Classification struct {
	Kind   Kind
	Prefix string
	Info   string
	Tag    string
	Reason string
}

// Rules carries the naming convention the classifier enforces. All values
// come from configuration; see config.Organize.
type Rules struct {
	BinaryExtensions []string
	ExcludedNames    []string
	ReferencePrefix  string
}

// token matches a single hyphen-delimited field of an acquisition name.
var token = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// suffix matches the underscore-delimited index the acquisition software
// appends; it is discarded during renaming.
var suffix = regexp.MustCompile(`_[0-9]+$`)

// Classify inspects a bare filename (no directory component) and returns the
// action the organizer should take. It never touches the filesystem.
func Classify(name string, rules Rules) Classification {
	if name == "" {
		return malformed("empty name")
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return malformed("name contains a path separator")
	}

	ext := filepath.Ext(name)
	for _, binExt := range rules.BinaryExtensions {
		if strings.EqualFold(ext, binExt) {
			return Classification{Kind: KindBinary}
		}
	}

	if strings.HasPrefix(name, ".") {
		return Classification{Kind: KindExcluded}
	}
	for _, excluded := range rules.ExcludedNames {
		if name == excluded {
			return Classification{Kind: KindExcluded}
		}
	}

	stem := Stem(name)
	if stem == "" {
		return malformed("empty stem after truncation")
	}

	fields := strings.Split(stem, "-")
	for _, field := range fields {
		if !token.MatchString(field) {
			return malformed(fmt.Sprintf("field %q is not alphanumeric", field))
		}
	}

	refPrefix := rules.ReferencePrefix
	if refPrefix == "" {
		refPrefix = "t"
	}
	if strings.HasPrefix(fields[0], refPrefix) {
		// References are usually a bare tag (t1_1.txt) but the acquisition
		// software sometimes emits the full three-field form.
		switch len(fields) {
		case 1, 3:
			return Classification{Kind: KindReference, Tag: fields[0]}
		default:
			return malformed(fmt.Sprintf("reference name has %d fields, want 1 or 3", len(fields)))
		}
	}

	if len(fields) != 3 {
		return malformed(fmt.Sprintf("sample name has %d fields, want 3", len(fields)))
	}
	return Classification{
		Kind:   KindSample,
		Prefix: fields[0],
		Info:   fields[1],
		Tag:    fields[2],
	}
}

// Stem strips the extension and the trailing acquisition suffix from a
// filename. A name without the suffix is returned with only the extension
// removed, so already-truncated names pass through unchanged.
func Stem(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return suffix.ReplaceAllString(base, "")
}

func malformed(reason string) Classification {
	return Classification{Kind: KindMalformed, Reason: reason}
}
