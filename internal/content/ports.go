package content

import "github.com/iancoleman/orderedmap"

type ContentServiceAPI interface {
	GetPageContent(pageSlug string) (*orderedmap.OrderedMap, error)
	UpsertSection(pageSlug, section string, content map[string]interface{}) (*PageContent, error)
}
