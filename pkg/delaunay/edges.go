package delaunay

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// ErrTripleSharedEdge - одно и то же ребро встретилось в полости больше двух раз.
// Сокращение пар такой случай не разбирает.
var ErrTripleSharedEdge = errors.New("edge shared by more than two cavity triangles")

// cancelEdges оставляет только границу полости.
// Ребро k сравнивается с оставшимися ребрами l < k; первая встречная пара удаляется целиком.
func cancelEdges(edges []geom.Segment) ([]geom.Segment, error) {
	boundary := make([]geom.Segment, 0, len(edges))

next:
	for _, e := range edges {
		for l := range boundary {
			if e.Reversed(boundary[l]) {
				boundary = append(boundary[:l], boundary[l+1:]...)
				continue next
			}
		}
		boundary = append(boundary, e)
	}

	return boundary, checkShared(edges)
}

// checkShared ищет ребра, встретившиеся больше двух раз без учета направления
func checkShared(edges []geom.Segment) error {
	var err error
	counts := make(map[geom.Segment]int, len(edges))
	for _, e := range edges {
		key := undirected(e)
		counts[key]++
		if counts[key] == 3 {
			err = multierr.Append(err, errors.Wrapf(ErrTripleSharedEdge, "edge %v-%v", key.P1, key.P2))
		}
	}
	return err
}

func undirected(s geom.Segment) geom.Segment {
	if s.P2.Less(s.P1) {
		return geom.Segment{P1: s.P2, P2: s.P1}
	}
	return s
}

func wrapSite(err error, site geom.Point) error {
	errs := multierr.Errors(err)
	for i := range errs {
		errs[i] = errors.WithMessagef(errs[i], "site %v", site)
	}
	return multierr.Combine(errs...)
}
