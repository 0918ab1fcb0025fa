package util

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSON 解析 AI 返回的文本。模型偶尔会把 JSON 包在 markdown 代码围栏里，
// 这里最多剥掉一对围栏（```json 或 ```），其余原样交给 json 解析。
// 对本来就干净的 JSON 幂等。
func CleanJSON(raw string) (map[string]json.RawMessage, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIJSON, err)
	}
	return parsed, nil
}
