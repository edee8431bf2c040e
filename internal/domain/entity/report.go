package entity

// Block is one unit of a Slack Block Kit message. Only the three kinds the
// report uses are modeled: header, section and divider. Text is nil for
// dividers and omitted from the wire format.
type Block struct {
	Type string     `json:"type"`
	Text *BlockText `json:"text,omitempty"`
}

// BlockText is the text object inside a header or section block.
type BlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewHeaderBlock builds a header block with plain text.
func NewHeaderBlock(text string) Block {
	return Block{Type: "header", Text: &BlockText{Type: "plain_text", Text: text}}
}

// NewSectionBlock builds a section block with mrkdwn text.
func NewSectionBlock(text string) Block {
	return Block{Type: "section", Text: &BlockText{Type: "mrkdwn", Text: text}}
}

// NewDividerBlock builds a divider block.
func NewDividerBlock() Block {
	return Block{Type: "divider"}
}

// RunResult is the terminal contract of one report invocation: an HTTP-style
// status code paired with a JSON-encoded human-readable message.
type RunResult struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
