// Package spatial implements the R-tree index that backs wirepath's
// collision queries and viewport culling.
//
// What:
//
//   - Index stores string-identified bounding boxes (one per diagram shape).
//   - Insert follows Guttman's original algorithm: choose-subtree by least
//     area enlargement, quadratic node split on overflow.
//   - Search answers "which shapes intersect this region" without touching
//     subtrees whose covering boxes miss the query.
//   - Bulk packs a whole shape list at once with Sort-Tile-Recursive (STR),
//     the rebuild path taken whenever the canvas layout changes.
//
// Why:
//
//   - The router queries the index once per candidate segment; a linear scan
//     over every shape would make routing quadratic in diagram size.
//   - Layout changes invalidate the whole index at once, so a fast packed
//     rebuild matters more than incremental deletion. The index therefore
//     has no Delete: rebuild with Bulk instead.
//
// Complexity:
//
//   - Insert: O(log n) expected per item.
//   - Search: O(log n + k) expected for k results, O(n) worst case under
//     heavy box overlap.
//   - Bulk:   O(n log n) for the coordinate sorts.
//
// Options:
//
//   - WithMaxEntries(m): node capacity (default 9, minimum 4). The minimum
//     fill is ⌈0.4·m⌉ per Guttman's recommendation.
//
// Errors:
//
//   - ErrEmptyID:     an item was presented without an identifier.
//   - ErrInvalidBox:  a bounding box with NaN/Inf or negative extent.
//   - ErrDuplicateID: an identifier was inserted twice.
//   - ErrBadFanout:   WithMaxEntries below the supported minimum.
package spatial
