package script

// Document is a lesson script as authored: ordered moments, each with
// ordered steps. It is the raw input to the plan compiler and is never
// consumed directly by the engine — compile it first.
type Document struct {
	Meta    Meta     `json:"meta"`
	Moments []Moment `json:"moments"`
}

// Meta carries script-level descriptors.
type Meta struct {
	Title    string `json:"title"`
	Code     string `json:"code,omitempty"`
	Course   string `json:"course,omitempty"`
	Language string `json:"language,omitempty"`
	Version  int    `json:"version,omitempty"`
}

// Moment is a lesson chapter.
type Moment struct {
	Title string `json:"title"`
	Code  string `json:"code,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Order int    `json:"order,omitempty"`
	Steps []Step `json:"steps"`
}

// Step is one atomic lesson-script unit.
type Step struct {
	Type              string   `json:"type"`
	Code              string   `json:"code,omitempty"`
	Order             int      `json:"order,omitempty"`
	Question          string   `json:"question,omitempty"`
	Objective         string   `json:"objective,omitempty"`
	Expected          []string `json:"expected,omitempty"`
	AcceptableAnswers []string `json:"acceptable_answers,omitempty"`
	AnswerType        string   `json:"answer_type,omitempty"`
	Body              string   `json:"body,omitempty"`
	Text              string   `json:"text,omitempty"`
	Items             []string `json:"items,omitempty"`
}
