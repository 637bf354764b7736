/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import "bennypowers.dev/tokman/transform"

// ParseStyles returns the style records of a styles response and the node
// ids whose details are needed to resolve them, in first-seen order.
func ParseStyles(resp *StylesResponse) ([]transform.StyleRecord, []string) {
	if resp == nil {
		return nil, nil
	}
	records := resp.Meta.Styles
	seen := make(map[string]bool, len(records))
	var ids []string
	for _, s := range records {
		if s.NodeID == "" || seen[s.NodeID] {
			continue
		}
		seen[s.NodeID] = true
		ids = append(ids, s.NodeID)
	}
	return records, ids
}
