package main

// tuiPrompter answers the engine's blocking confirmations. The terminal
// cannot block inside Update, so the first Confirm records the question and
// declines; the host asks the user and replays the operation with the
// prompter armed.
type tuiPrompter struct {
	autoConfirm bool
	armed       bool
	pending     string
	notice      string
}

func (p *tuiPrompter) Confirm(message string) bool {
	if p.autoConfirm {
		return true
	}
	if p.armed {
		p.armed = false
		return true
	}
	p.pending = message
	return false
}

func (p *tuiPrompter) Notify(message string) {
	p.notice = message
}

// takePending returns and clears the recorded question.
func (p *tuiPrompter) takePending() string {
	msg := p.pending
	p.pending = ""
	return msg
}

func (p *tuiPrompter) takeNotice() string {
	msg := p.notice
	p.notice = ""
	return msg
}
