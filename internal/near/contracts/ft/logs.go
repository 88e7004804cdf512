package ft

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

const (
	eventLogPrefix = "EVENT_JSON:"
	standardNEP141 = "nep141"

	eventTransfer = "ft_transfer"
	eventMint     = "ft_mint"
	eventBurn     = "ft_burn"
)

// Logs of contracts written before NEP-297 events.
var (
	legacyRefund = regexp.MustCompile(`^Refund (\d+) from (\S+) to (\S+)$`)
	legacyBurn   = regexp.MustCompile(`^Account @(\S+) burned (\d+)$`)
)

type eventLog struct {
	Standard string          `json:"standard"`
	Version  string          `json:"version"`
	Event    string          `json:"event"`
	Data     json.RawMessage `json:"data"`
}

type transferEventData struct {
	OldOwnerID string  `json:"old_owner_id"`
	NewOwnerID string  `json:"new_owner_id"`
	Amount     string  `json:"amount"`
	Memo       *string `json:"memo"`
}

type supplyEventData struct {
	OwnerID string  `json:"owner_id"`
	Amount  string  `json:"amount"`
	Memo    *string `json:"memo"`
}

// fromLogs extracts the listed nep141 events from the receipt logs, in log
// order. Logs of other standards or events are ignored.
func fromLogs(logs []string, events ...string) ([]model.FtEventDraft, error) {
	wanted := make(map[string]bool, len(events))
	for _, e := range events {
		wanted[e] = true
	}

	var drafts []model.FtEventDraft
	for _, line := range logs {
		found, err := parseLog(line, wanted)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, found...)
	}
	return drafts, nil
}

func parseLog(line string, wanted map[string]bool) ([]model.FtEventDraft, error) {
	if payload, ok := strings.CutPrefix(line, eventLogPrefix); ok {
		var event eventLog
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			return nil, fmt.Errorf("parse event log: %w", err)
		}
		if event.Standard != standardNEP141 || !wanted[event.Event] {
			return nil, nil
		}
		return parseEvent(event)
	}

	if m := legacyRefund.FindStringSubmatch(line); m != nil && wanted[eventTransfer] {
		return transferPair(m[2], m[3], m[1], model.FtCauseRefund, "")
	}
	if m := legacyBurn.FindStringSubmatch(line); m != nil && wanted[eventBurn] {
		return supplyChange(m[1], m[2], model.FtCauseBurn, "")
	}
	return nil, nil
}

func parseEvent(event eventLog) ([]model.FtEventDraft, error) {
	var drafts []model.FtEventDraft
	switch event.Event {
	case eventTransfer:
		var data []transferEventData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return nil, fmt.Errorf("parse %s data: %w", event.Event, err)
		}
		for _, d := range data {
			pair, err := transferPair(d.OldOwnerID, d.NewOwnerID, d.Amount, model.FtCauseRefund, deref(d.Memo))
			if err != nil {
				return nil, err
			}
			drafts = append(drafts, pair...)
		}
	case eventMint, eventBurn:
		cause := model.FtCauseMint
		if event.Event == eventBurn {
			cause = model.FtCauseBurn
		}
		var data []supplyEventData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return nil, fmt.Errorf("parse %s data: %w", event.Event, err)
		}
		for _, d := range data {
			change, err := supplyChange(d.OwnerID, d.Amount, cause, deref(d.Memo))
			if err != nil {
				return nil, err
			}
			drafts = append(drafts, change...)
		}
	}
	return drafts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
