package xml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Package-level namespaces and relationship types.
const (
	NamespaceContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	NamespaceRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"

	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtended       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RelTypeSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// ContentTypes represents [Content_Types].xml
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// ContentTypeDefault maps a file extension to a content type
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps a single part name to a content type
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// NewContentTypes returns a content type table with the rels and xml defaults.
func NewContentTypes() *ContentTypes {
	return &ContentTypes{
		Namespace: NamespaceContentTypes,
		Defaults: []ContentTypeDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
	}
}

// AddDefault registers ext unless it is already present. Extensions compare case-insensitively.
func (c *ContentTypes) AddDefault(ext, contentType string) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, def := range c.Defaults {
		if strings.EqualFold(def.Extension, ext) {
			return
		}
	}
	c.Defaults = append(c.Defaults, ContentTypeDefault{Extension: ext, ContentType: contentType})
}

// AddOverride registers a part. partName must start with "/".
func (c *ContentTypes) AddOverride(partName, contentType string) {
	c.Overrides = append(c.Overrides, ContentTypeOverride{PartName: partName, ContentType: contentType})
}

// Relationship represents a relationship in the package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// NewRelationships returns an empty relationship set.
func NewRelationships() *Relationships {
	return &Relationships{Namespace: NamespaceRelationships}
}

// Add appends a relationship with the next free rId and returns the id.
func (r *Relationships) Add(relType, target string) string {
	id := r.NextID()
	r.Relationship = append(r.Relationship, Relationship{ID: id, Type: relType, Target: target})
	return id
}

// NextID returns one past the highest numeric rId in use.
func (r *Relationships) NextID() string {
	maxID := 0
	for _, rel := range r.Relationship {
		if strings.HasPrefix(rel.ID, "rId") {
			if id, err := strconv.Atoi(rel.ID[3:]); err == nil && id > maxID {
				maxID = id
			}
		}
	}
	return fmt.Sprintf("rId%d", maxID+1)
}
