package hidprofile

import (
	"github.com/srg/hidsdp/pkg/sdp"
)

// Record renders the configuration as an SDP record tree. Encoding cannot
// fail: a well-typed Configuration is always structurally valid. Attributes
// come out in the registry's insertion order, which is the wire order the
// profile mandates, and absent optional attributes are omitted outright.
func (c *Configuration) Record() sdp.Record {
	var items []sdp.Tag
	for pair := attributeRegistry.Oldest(); pair != nil; pair = pair.Next() {
		value, present := pair.Value.encode(c)
		if !present {
			continue
		}
		items = append(items, sdp.Attr(pair.Key, value))
	}
	return sdp.Record{Items: items}
}
