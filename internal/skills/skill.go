package skills

// Grade keys match the two practice tracks offered by the service.
const (
	GradeJunior = "junior"
	GradeMiddle = "middle"
)

// Skill is a single learning objective, the unit of question fetching
// and progress tracking.
type Skill struct {
	ID          string
	Name        string
	TopicKey    string
	Grade       string
	Description string
	Position    int // ordering within the topic
}
