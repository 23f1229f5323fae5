// Package types provides type definitions for structured data used throughout the resume-preview system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NodeRole tags a document node with its semantic role
type NodeRole string

// Node roles emitted by the renderer
const (
	RolePage         NodeRole = "page"
	RoleHeader       NodeRole = "header"
	RoleSidebar      NodeRole = "sidebar"
	RoleMain         NodeRole = "main"
	RoleSection      NodeRole = "section"
	RoleSectionTitle NodeRole = "section-title"
	RoleSectionBody  NodeRole = "section-body"
	RoleItem         NodeRole = "item"
	RoleHeading      NodeRole = "heading"
	RoleText         NodeRole = "text"
	RoleImage        NodeRole = "image"
	RoleRule         NodeRole = "rule"
	RoleContact      NodeRole = "contact"
	RoleTag          NodeRole = "tag"
	RoleBulletList   NodeRole = "bullet-list"
	RoleBullet       NodeRole = "bullet"
	RoleDivider      NodeRole = "divider"
	RoleRow          NodeRole = "row"
	RoleGrid         NodeRole = "grid"
	RoleColumn       NodeRole = "column"
)

// Document is the rendered output: a page box plus an ordered node tree.
// It carries no behavior and is safe to serialize.
type Document struct {
	Title        string  `json:"title"`
	Layout       string  `json:"layout"`
	PrimaryColor string  `json:"primary_color"`
	FontFamily   string  `json:"font_family"`
	Page         PageBox `json:"page"`
	Root         *Node   `json:"root"`
}

// PageBox is the fixed page size in CSS pixels (A4 at 96 dpi)
type PageBox struct {
	Width     float64 `json:"width"`
	MinHeight float64 `json:"min_height"`
}

// Node is one element of the document tree
type Node struct {
	Role     NodeRole `json:"role"`
	Section  string   `json:"section,omitempty"`
	Prefix   string   `json:"prefix,omitempty"` // separator or icon shown before Text
	Text     string   `json:"text,omitempty"`
	Src      string   `json:"src,omitempty"`
	Style    Style    `json:"style,omitzero"`
	Children []*Node  `json:"children,omitempty"`
}

// Style holds resolved presentation attributes. Lengths are CSS pixels; zero means unset.
type Style struct {
	// Typography
	FontFamily    string  `json:"font_family,omitempty"`
	FontSize      float64 `json:"font_size,omitempty"`
	FontWeight    int     `json:"font_weight,omitempty"`
	LineHeight    float64 `json:"line_height,omitempty"`
	LetterSpacing float64 `json:"letter_spacing,omitempty"` // em
	NoWrap        bool    `json:"no_wrap,omitempty"`

	// Color
	Color      string  `json:"color,omitempty"`
	Background string  `json:"background,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`

	// Box
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	MinHeight float64 `json:"min_height,omitempty"`
	Padding   Box     `json:"padding,omitzero"`
	Margin    Box     `json:"margin,omitzero"`
	Border    Border  `json:"border,omitzero"`
	Radius    float64 `json:"radius,omitempty"`
	Circular  bool    `json:"circular,omitempty"`
	ObjectFit string  `json:"object_fit,omitempty"`

	// Arrangement
	Display      string  `json:"display,omitempty"` // flex | grid
	Columns      int     `json:"columns,omitempty"`
	Gap          float64 `json:"gap,omitempty"`
	RowGap       float64 `json:"row_gap,omitempty"`
	Wrap         bool    `json:"wrap,omitempty"`
	Justify      string  `json:"justify,omitempty"`
	Align        string  `json:"align,omitempty"`
	Grow         float64 `json:"grow,omitempty"`
	Indent       float64 `json:"indent,omitempty"`
	KeepTogether bool    `json:"keep_together,omitempty"`
}

// Box is a four-sided length (top, right, bottom, left)
type Box struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// Border describes a single border line. Side is "all", "top" or "bottom".
type Border struct {
	Side  string  `json:"side,omitempty"`
	Width float64 `json:"width,omitempty"`
	Style string  `json:"style,omitempty"` // solid | dashed
	Color string  `json:"color,omitempty"`
}

// Walk visits n and all of its descendants in document order
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Find returns every node in the subtree that matches the predicate, in document order
func (n *Node) Find(match func(*Node) bool) []*Node {
	var found []*Node
	n.Walk(func(node *Node) {
		if match(node) {
			found = append(found, node)
		}
	})
	return found
}
