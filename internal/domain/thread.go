package domain

import "sort"

// DefaultThreadDepth bounds reply nesting when no limit is configured.
const DefaultThreadDepth = 64

// ThreadStats lists comments left out of a built thread.
type ThreadStats struct {
	// Truncated holds comments whose depth exceeded the limit. Their
	// descendants are counted in Unreachable.
	Truncated []int64
	// Unreachable holds comments that no root leads to: replies to a
	// parent outside the set, their descendants and descendants of
	// truncated comments.
	Unreachable []int64
}

// Excluded is the total number of comments left out.
func (s ThreadStats) Excluded() int {
	return len(s.Truncated) + len(s.Unreachable)
}

// BuildThread links a flat list of comments of one idea into a forest.
// Roots and every replies list are ordered by comment id, which is
// creation order. Nodes are linked breadth-first from the roots so the
// depth of the input never reaches the call stack; a root is at depth 1
// and nothing deeper than maxDepth is attached. maxDepth <= 0 means
// DefaultThreadDepth.
func BuildThread(comments []Comment, maxDepth int) ([]*CommentNode, ThreadStats) {
	if maxDepth <= 0 {
		maxDepth = DefaultThreadDepth
	}

	arena := make([]CommentNode, len(comments))
	for i, c := range comments {
		arena[i] = CommentNode{Comment: c, Replies: []*CommentNode{}}
	}
	sort.Slice(arena, func(i, j int) bool { return arena[i].ID < arena[j].ID })

	index := make(map[int64]int, len(arena))
	for i := range arena {
		index[arena[i].ID] = i
	}

	roots := []*CommentNode{}
	children := make(map[int64][]int, len(arena))
	for i := range arena {
		parent := arena[i].ParentCommentID
		if parent == nil {
			roots = append(roots, &arena[i])
			continue
		}
		if _, ok := index[*parent]; ok {
			children[*parent] = append(children[*parent], i)
		}
	}

	type item struct {
		node  *CommentNode
		depth int
	}

	var stats ThreadStats
	visited := make([]bool, len(arena))
	queue := make([]item, 0, len(roots))
	for _, r := range roots {
		visited[index[r.ID]] = true
		queue = append(queue, item{node: r, depth: 1})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, ci := range children[cur.node.ID] {
			if visited[ci] {
				continue
			}
			visited[ci] = true
			if cur.depth+1 > maxDepth {
				stats.Truncated = append(stats.Truncated, arena[ci].ID)
				continue
			}
			child := &arena[ci]
			cur.node.Replies = append(cur.node.Replies, child)
			queue = append(queue, item{node: child, depth: cur.depth + 1})
		}
	}

	for i := range arena {
		if !visited[i] {
			stats.Unreachable = append(stats.Unreachable, arena[i].ID)
		}
	}

	return roots, stats
}
