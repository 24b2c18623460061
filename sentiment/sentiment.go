package sentiment

// Label is a discrete sentiment class assigned to a single comment or
// review text.
type Label string

const (
	Negative Label = "negative"
	Neutral  Label = "neutral"
	Positive Label = "positive"
)

// LabelFromCode maps the classifier service's numeric encoding to a Label.
// The encoding is alphabetical (LabelEncoder order of the model service):
// 0=negative, 1=neutral, 2=positive.
func LabelFromCode(code int) (Label, bool) {
	switch code {
	case 0:
		return Negative, true
	case 1:
		return Neutral, true
	case 2:
		return Positive, true
	}
	return "", false
}

// Valid reports whether l is one of the three known labels.
func (l Label) Valid() bool {
	return l == Negative || l == Neutral || l == Positive
}

// Tally counts sentiment labels over a comment collection. It is derived
// on every pipeline run and never persisted on its own.
type Tally struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Add increments the counter for l. Unknown labels count as neutral so the
// tally invariant Sum()==len(collection) always holds.
func (t *Tally) Add(l Label) {
	switch l {
	case Positive:
		t.Positive++
	case Negative:
		t.Negative++
	default:
		t.Neutral++
	}
}

func (t Tally) Sum() int {
	return t.Positive + t.Neutral + t.Negative
}

// Scored is one classifier result item: the service's normalized form of
// the input text plus its label. Results correlate to the request purely
// by position; no item id survives the wire.
type Scored struct {
	Text  string
	Label Label
}
