package tags

import "strings"

const (
	releaseClassifierMarkerConstant     = "RC;"
	classifierFieldSeparatorConstant    = ";"
	sentinelNamespaceConstant           = "."
	namespaceSegmentSeparatorConstant   = "/"
	tagClassUnmatchedStringConstant     = "unmatched"
	tagClassSentinelStringConstant      = "sentinel"
	tagClassNamespacedStringConstant    = "namespaced"
	classifierMinimumFieldCountConstant = 2
)

// TagClass identifies how a tag name relates to the release classifier grammar.
type TagClass string

// Recognized tag classes.
const (
	TagClassUnmatched  TagClass = TagClass(tagClassUnmatchedStringConstant)
	TagClassSentinel   TagClass = TagClass(tagClassSentinelStringConstant)
	TagClassNamespaced TagClass = TagClass(tagClassNamespacedStringConstant)
)

// ParsedTag is the typed intermediate produced by classifying a raw tag name.
//
// For matched tags the original name decomposes as
// <Prefix>RC;<Namespace>;<Remainder>, with Namespace holding the sentinel "."
// for previously unnamespaced tags.
type ParsedTag struct {
	OriginalName string
	Class        TagClass
	Prefix       string
	Namespace    string
	Remainder    string
}

// ParseTagName classifies tagName against the embedded RC;<A>;<B> grammar.
// The first classifier occurrence wins; names without a complete classifier
// are reported as unmatched.
func ParseTagName(tagName string) ParsedTag {
	markerIndex := strings.Index(tagName, releaseClassifierMarkerConstant)
	if markerIndex < 0 {
		return ParsedTag{OriginalName: tagName, Class: TagClassUnmatched}
	}

	classifierFields := strings.SplitN(tagName[markerIndex+len(releaseClassifierMarkerConstant):], classifierFieldSeparatorConstant, classifierMinimumFieldCountConstant)
	if len(classifierFields) < classifierMinimumFieldCountConstant {
		return ParsedTag{OriginalName: tagName, Class: TagClassUnmatched}
	}

	parsedTag := ParsedTag{
		OriginalName: tagName,
		Class:        TagClassNamespaced,
		Prefix:       tagName[:markerIndex],
		Namespace:    classifierFields[0],
		Remainder:    classifierFields[1],
	}
	if parsedTag.Namespace == sentinelNamespaceConstant {
		parsedTag.Class = TagClassSentinel
		parsedTag.Namespace = ""
	}
	return parsedTag
}

// NamespacedName returns the tag name rewritten to embed remoteName.
// Unmatched tags keep their original name.
func (parsedTag ParsedTag) NamespacedName(remoteName string) string {
	switch parsedTag.Class {
	case TagClassSentinel:
		return parsedTag.Prefix + releaseClassifierMarkerConstant + remoteName + classifierFieldSeparatorConstant + parsedTag.Remainder
	case TagClassNamespaced:
		return parsedTag.Prefix + releaseClassifierMarkerConstant + remoteName + namespaceSegmentSeparatorConstant + parsedTag.Namespace + classifierFieldSeparatorConstant + parsedTag.Remainder
	default:
		return parsedTag.OriginalName
	}
}
