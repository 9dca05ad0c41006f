package clickhouse

import (
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encodeInfo(info model.ModuleInfo) (string, error) {
	b, err := json.Marshal(info)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeInfo(raw string) (model.ModuleInfo, error) {
	var info model.ModuleInfo
	if raw == "" {
		return info, nil
	}
	err := json.Unmarshal([]byte(raw), &info)
	return info, err
}

func encodeEnrichment(e *model.Enrichment) (string, error) {
	if e == nil {
		return "", nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
