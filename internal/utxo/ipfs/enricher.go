package ipfs

import (
	"context"
	"strings"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"go.uber.org/zap"
)

const (
	remarkPrefix   = "IPFS;"
	enrichmentType = "ipfs"
)

type (
	// Fetcher resolves a content reference to a JSON document.
	Fetcher interface {
		Fetch(ctx context.Context, ref string) ([]byte, error)
	}
)

type kind int

const (
	kindExtended kind = iota
	kindAggregate
	kindPost
)

// Enricher attaches content referenced by IPFS remarks to transaction records.
type Enricher struct {
	fetcher Fetcher
	enabled bool
	logger  *zap.Logger
}

// NewEnricher builds an Enricher. A nil fetcher disables fetching; matching remarks are then recorded
// as unsuccessful.
func NewEnricher(fetcher Fetcher, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{fetcher: fetcher, enabled: fetcher != nil, logger: logger.Named("ipfs")}
}

// Enrich fills tx.Enrichment when the remark references IPFS content. Fetch failures are logged and
// leave the enrichment unsuccessful.
func (e *Enricher) Enrich(ctx context.Context, tx *model.Transaction) {
	k, ref, ok := parseRemark(tx.Remark)
	if !ok {
		return
	}

	enrichment := &model.Enrichment{Type: enrichmentType}
	tx.Enrichment = enrichment
	if !e.enabled {
		return
	}
	if ref == "" {
		e.logger.Warn("ipfs remark without reference", zap.String("hash", tx.Hash), zap.String("remark", tx.Remark))
		return
	}

	doc, err := e.fetcher.Fetch(ctx, ref)
	if err != nil {
		e.logger.Warn("can't retrieve ipfs content",
			zap.String("hash", tx.Hash),
			zap.String("ref", ref),
			zap.Error(err),
		)
		return
	}

	switch k {
	case kindAggregate:
		enrichment.Aggregate = doc
	case kindPost:
		enrichment.Post = doc
	default:
		enrichment.Extended = doc
	}
	enrichment.Success = true
}

// EnrichAll enriches every transaction in order.
func (e *Enricher) EnrichAll(ctx context.Context, txs []*model.Transaction) {
	for _, tx := range txs {
		e.Enrich(ctx, tx)
	}
}

// parseRemark recognises IPFS;A;<ref>, IPFS;P;<ref> and IPFS;<ref>.
func parseRemark(remark string) (kind, string, bool) {
	if !strings.HasPrefix(remark, remarkPrefix) {
		return 0, "", false
	}
	parts := strings.Split(remark, ";")
	switch parts[1] {
	case "A", "P":
		k := kindAggregate
		if parts[1] == "P" {
			k = kindPost
		}
		if len(parts) < 3 {
			return k, "", true
		}
		return k, parts[2], true
	default:
		return kindExtended, parts[1], true
	}
}
