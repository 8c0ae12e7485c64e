// Package tree decodes element trees written as JSON or YAML documents.
//
// A document is a single element. Objects with a "$tag" key are elements;
// "$ns" selects the html (default) or svg namespace and "$children" lists
// the element's children. Every other key of an element object is an
// option, with the same meaning as in skooma.Props:
//
//	$tag: button
//	class: [warning, important]
//	style: {backgroundColor: red}
//	disabled: true
//	$children:
//	  - Delete everything
//
// Objects without "$tag" inside a children list are option mappings.
// Strings, numbers and booleans inside lists become text.
package tree
