// Package catalog holds the category tree and position ordering logic shared
// by the category and placement services. Everything here is pure: functions
// take loaded rows and return new values, persistence stays in the services.
package catalog

import (
	"sort"
	"strings"

	"backoffice/internal/models"
)

// LabelSeparator joins ancestor names in flattened selector labels.
const LabelSeparator = " → "

// BuildForest links flat category rows into a forest via parent_id. Siblings
// are ordered by position, then id for rows sharing a position. Rows whose
// parent is missing from the input are treated as roots rather than dropped.
// The input slice is not modified; Children slices are rebuilt from scratch.
func BuildForest(categories []*models.Category) []*models.Category {
	byID := make(map[int64]*models.Category, len(categories))
	for _, c := range categories {
		c.Children = nil
		byID[c.ID] = c
	}

	var roots []*models.Category
	for _, c := range categories {
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Children = append(parent.Children, c)
				continue
			}
		}
		roots = append(roots, c)
	}

	sortSiblings(roots)
	for _, c := range categories {
		sortSiblings(c.Children)
	}
	return roots
}

func sortSiblings(nodes []*models.Category) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Position != nodes[j].Position {
			return nodes[i].Position < nodes[j].Position
		}
		return nodes[i].ID < nodes[j].ID
	})
}

// Option is one entry of the flattened parent-selector list.
type Option struct {
	Value    int64  `json:"value"`
	Label    string `json:"label"`
	Level    int    `json:"level"`
	FullURL  string `json:"fullUrl"`
	Excluded bool   `json:"excluded"`
}

// Flatten walks the forest in pre-order and emits one option per node that
// has a content entry for languageID. Labels join ancestor names for that
// language root to leaf; FullURL joins ancestor url segments with "/".
// Only the node whose id equals excludeID is marked excluded. Nodes without
// a content entry for the language are left out of the list, but their
// subtrees are still visited so deeper categories stay selectable.
func Flatten(forest []*models.Category, excludeID, languageID int64) []Option {
	options := make([]Option, 0, 16)
	for _, root := range forest {
		options = flattenNode(root, nil, nil, excludeID, languageID, options)
	}
	return options
}

func flattenNode(node *models.Category, names, segments []string, excludeID, languageID int64, out []Option) []Option {
	childNames := names
	if data := node.DataFor(languageID); data != nil {
		childNames = append(append([]string(nil), names...), data.Name)
		out = append(out, Option{
			Value:    node.ID,
			Label:    strings.Join(childNames, LabelSeparator),
			Level:    node.Level,
			FullURL:  strings.Join(segmentsFor(node, segments, languageID), "/"),
			Excluded: node.ID == excludeID,
		})
	}

	childSegments := segmentsFor(node, segments, languageID)
	for _, child := range node.Children {
		out = flattenNode(child, childNames, childSegments, excludeID, languageID, out)
	}
	return out
}

func segmentsFor(node *models.Category, segments []string, languageID int64) []string {
	if u := node.URLFor(languageID); u != nil && u.URL != "" {
		return append(append([]string(nil), segments...), u.URL)
	}
	return segments
}

// FullURL composes a category's localized full URL from its parent's full
// URL and its own segment. A root category (parentFullURL empty) keeps the
// raw segment with no prefix.
func FullURL(parentFullURL, segment string) string {
	if parentFullURL == "" {
		return segment
	}
	return parentFullURL + "/" + segment
}

// IsDescendant reports whether candidateID sits anywhere inside the subtree
// rooted at ancestorID, given the flat parent map. Used to reject reparenting
// a category onto itself or one of its own descendants.
func IsDescendant(parents map[int64]*int64, ancestorID, candidateID int64) bool {
	if ancestorID == candidateID {
		return true
	}
	seen := make(map[int64]bool)
	cur := candidateID
	for {
		parent, ok := parents[cur]
		if !ok || parent == nil {
			return false
		}
		if *parent == ancestorID {
			return true
		}
		if seen[*parent] {
			// parent chain already contains a cycle
			return false
		}
		seen[*parent] = true
		cur = *parent
	}
}
