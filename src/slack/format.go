package slack

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"finsync-server/src/models"
	"finsync-server/src/util"

	"github.com/slack-go/slack"
)

// Slash-command response visibility values.
const (
	ResponseTypeEphemeral = "ephemeral"
	ResponseTypeInChannel = "in_channel"
)

var currencyKeywords = []string{"revenue", "expense", "profit", "balance", "amount"}

// FormatQueryResponse renders query_financial_data rows into a slash-command
// reply. Each row's result_type picks the rendering; rows with an unknown
// type get their label line and nothing else.
func FormatQueryResponse(results []models.QueryResult, loc *time.Location) slack.Msg {
	if len(results) == 0 {
		return slack.Msg{
			ResponseType: ResponseTypeEphemeral,
			Text:         "I couldn't find any data matching your query.",
		}
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "📊 Financial Data Query Results", true, false)),
		slack.NewDividerBlock(),
	}

	for _, result := range results {
		blocks = append(blocks, mrkdwnSection("*"+result.ResultText+"*"))

		switch result.ResultType {
		case "chart":
			if text := renderChart(result.ResultData); text != "" {
				blocks = append(blocks, mrkdwnSection("```"+text+"```"))
			}
		case "summary":
			if text := renderSummary(result.ResultData); text != "" {
				blocks = append(blocks, mrkdwnSection(text))
			}
		case "transactions", "accounts", "categories":
			if text := renderList(result.ResultType, result.ResultData); text != "" {
				blocks = append(blocks, mrkdwnSection(text))
			}
		default:
			// Unknown result type: label only.
		}
	}

	if loc == nil {
		loc = time.UTC
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("_Generated at %s_", time.Now().In(loc).Format("1/2/2006, 3:04:05 PM")), false, false)))

	return slack.Msg{
		ResponseType: ResponseTypeInChannel,
		Blocks:       slack.Blocks{BlockSet: blocks},
	}
}

func mrkdwnSection(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

// renderChart emits one line per row: the month value as the label, every
// other value as a currency figure.
func renderChart(data json.RawMessage) string {
	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		if month, ok := item["month"]; ok {
			fmt.Fprintf(&b, "%v: ", month)
		}
		for _, key := range sortedKeys(item) {
			if key == "month" {
				continue
			}
			if v, ok := toFloat(item[key]); ok {
				b.WriteString(util.FormatCurrency(v) + " ")
			} else {
				fmt.Fprintf(&b, "%v ", item[key])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSummary(data json.RawMessage) string {
	var item map[string]interface{}
	if err := json.Unmarshal(data, &item); err != nil {
		return ""
	}

	var b strings.Builder
	for _, key := range sortedKeys(item) {
		formattedKey := util.FormatKey(key)
		value := item[key]

		// "change" wins over currency keywords: net_revenue_change is a
		// percentage, not a dollar figure.
		if v, ok := toFloat(value); ok && strings.Contains(key, "change") {
			indicator := "📉"
			if v > 0 {
				indicator = "📈"
			}
			fmt.Fprintf(&b, "*%s*: %s%% %s\n", formattedKey, strconv.FormatFloat(v, 'f', -1, 64), indicator)
		} else if v, ok := toFloat(value); ok && isCurrencyKey(key) {
			fmt.Fprintf(&b, "*%s*: %s\n", formattedKey, util.FormatCurrency(v))
		} else {
			fmt.Fprintf(&b, "*%s*: %v\n", formattedKey, value)
		}
	}
	return b.String()
}

func renderList(resultType string, data json.RawMessage) string {
	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		switch resultType {
		case "transactions":
			amount, _ := toFloat(item["amount"])
			indicator := "💰"
			if amount < 0 {
				indicator = "💸"
			}
			abs := amount
			if abs < 0 {
				abs = -abs
			}
			fmt.Fprintf(&b, "• *%v* - %v: %s %s\n", item["date"], item["name"], util.FormatCurrency(abs), indicator)
		case "accounts":
			balance, _ := toFloat(item["balance"])
			fmt.Fprintf(&b, "• *%v* (%v): %s\n", item["name"], item["type"], util.FormatCurrency(balance))
		case "categories":
			amount, _ := toFloat(item["amount"])
			fmt.Fprintf(&b, "• *%v*: %s\n", item["category"], util.FormatCurrency(amount))
		}
	}
	return b.String()
}

func isCurrencyKey(key string) bool {
	for _, kw := range currencyKeywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Fixed iteration order: JSON objects decode into maps, so keys are sorted
// to keep rendered output stable.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
