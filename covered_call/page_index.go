package covered_call

import (
	"fmt"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
)

// PageLocation points at the price entry of one round
type PageLocation struct {
	PageIndex uint64
	Offset    uint64
}

// LocateRound maps a round to its price-per-share page and entry offset.
//
// The page index is round / roundsPerPage. In page_local mode the offset is
// round-1 relative to the page start; a round that is an exact multiple of
// roundsPerPage belongs to the last slot of the previous page. In global mode
// the offset is round-1 unchanged.
func LocateRound(round, roundsPerPage uint64, mode string) (PageLocation, error) {
	if round == 0 {
		return PageLocation{}, fmt.Errorf("%w: round 0 has no settled price", interfaces.ErrIndexOutOfRange)
	}
	if roundsPerPage == 0 {
		return PageLocation{}, fmt.Errorf("rounds per page must be positive")
	}

	pageIndex := round / roundsPerPage
	if mode == config.IndexModeGlobal {
		return PageLocation{PageIndex: pageIndex, Offset: round - 1}, nil
	}

	if pageIndex*roundsPerPage > round-1 {
		pageIndex--
	}
	return PageLocation{PageIndex: pageIndex, Offset: round - 1 - pageIndex*roundsPerPage}, nil
}
