// Package advisor produces rule-based coaching recommendations from the
// current task list, break history, wellness ratings, and completion rate.
package advisor

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"ireminder/pkg/task"
)

// Recommendation types.
const (
	TypeTaskOrder = "task_order"
	TypeBreak     = "break"
	TypeWellness  = "wellness"
	TypeFocus     = "focus"
)

// Recommendation is a single piece of advice. Priority ranks recommendations
// against each other, higher meaning more pressing.
type Recommendation struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Engine generates recommendations. The clock and the random pick are
// injectable for tests.
type Engine struct {
	now  func() time.Time
	pick func(n int) int
}

// NewEngine creates an Engine with the wall clock and math/rand picks.
func NewEngine() *Engine {
	return &Engine{now: time.Now, pick: rand.Intn}
}

func (e *Engine) newRecommendation(typ, title, description string, priority int) Recommendation {
	return Recommendation{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Type:        typ,
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   e.now(),
	}
}

// TaskOrder recommends which task to work on next: the incomplete task with
// the highest priority, breaking ties by earliest due date. With nothing left
// to do it returns a low-priority all-caught-up note instead.
func (e *Engine) TaskOrder(tasks []task.Task) Recommendation {
	var open []task.Task
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}

	if len(open) == 0 {
		return e.newRecommendation(TypeTaskOrder,
			"All caught up!",
			"Great job! You've completed all your tasks. Consider adding new goals or taking a well-deserved break.",
			1)
	}

	sort.SliceStable(open, func(i, j int) bool {
		wi, wj := open[i].Priority.Weight(), open[j].Priority.Weight()
		if wi != wj {
			return wi > wj
		}
		// At equal priority a due date beats none; two due dates sort earliest first.
		switch {
		case open[i].DueDate != nil && open[j].DueDate != nil:
			return open[i].DueDate.Before(*open[j].DueDate)
		case open[i].DueDate != nil:
			return true
		default:
			return false
		}
	})
	next := open[0]

	var suggestion string
	switch hour := e.now().Hour(); {
	case hour < 10:
		suggestion = "Start your day strong with your highest priority task"
	case hour < 14:
		suggestion = "Perfect time to tackle important work while your energy is high"
	case hour < 17:
		suggestion = "Keep the momentum going with this important task"
	default:
		suggestion = "Finish strong with this priority item"
	}

	urgency := "needs your attention"
	if next.DueDate != nil {
		urgency = "is due soon"
	}

	return e.newRecommendation(TypeTaskOrder,
		fmt.Sprintf("Focus on: %s", next.Title),
		fmt.Sprintf("%s. This %s priority task %s.", suggestion, next.Priority, urgency),
		3)
}

var breakActivities = []string{
	"Take a 5-minute walk around your space",
	"Do some gentle stretching exercises",
	"Practice deep breathing for 2-3 minutes",
	"Step outside for fresh air",
	"Hydrate with a glass of water",
	"Do some quick desk exercises",
}

// Break suggests a break once at least 45 minutes have passed since the last
// one. A nil lastBreak counts as two hours of focus. Returns ok=false when it
// is too soon.
func (e *Engine) Break(lastBreak *time.Time) (Recommendation, bool) {
	sinceBreak := 120.0
	if lastBreak != nil {
		sinceBreak = e.now().Sub(*lastBreak).Minutes()
	}
	if sinceBreak < 45 {
		return Recommendation{}, false
	}

	activity := breakActivities[e.pick(len(breakActivities))]
	return e.newRecommendation(TypeBreak,
		"Time for a break!",
		fmt.Sprintf("You've been focused for %d minutes. %s to recharge your energy.",
			int(sinceBreak+0.5), activity),
		2), true
}

// Suggest picks between the task-order and break recommendations. The break
// wins only when one is due and its priority is at least the task one's.
func (e *Engine) Suggest(tasks []task.Task, lastBreak *time.Time) Recommendation {
	taskRec := e.TaskOrder(tasks)
	if breakRec, ok := e.Break(lastBreak); ok && breakRec.Priority >= taskRec.Priority {
		return breakRec
	}
	return taskRec
}

// Wellness turns today's mood, energy, and stress ratings into advice. High
// stress outranks low energy, which outranks low mood.
func (e *Engine) Wellness(mood, energy, stress int) Recommendation {
	switch {
	case stress >= 4:
		return e.newRecommendation(TypeWellness,
			"Stress Management",
			"Your stress levels seem high. Try a 5-minute meditation, listen to calming music, or practice progressive muscle relaxation.",
			3)
	case energy <= 2:
		return e.newRecommendation(TypeWellness,
			"Energy Boost",
			"Feeling low energy? Consider a short walk, some light stretching, or a healthy snack to naturally boost your energy.",
			2)
	case mood <= 2:
		return e.newRecommendation(TypeWellness,
			"Mood Lift",
			"Here are some mood boosters: listen to your favorite music, call a friend, or write down three things you're grateful for.",
			2)
	default:
		return e.newRecommendation(TypeWellness,
			"Keep up the great work!",
			"You're doing well today. Maintain this positive momentum by staying hydrated and taking regular breaks.",
			1)
	}
}

// Focus grades the day's completion rate into a pep talk. A zero total counts
// as a 0% rate.
func (e *Engine) Focus(completed, total int) Recommendation {
	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	switch {
	case rate >= 80:
		return e.newRecommendation(TypeFocus,
			"Excellent progress!",
			"You're crushing your goals today! Keep this momentum going and consider tackling one more challenging task.",
			1)
	case rate >= 50:
		return e.newRecommendation(TypeFocus,
			"Good momentum",
			"You're making solid progress. Focus on your highest priority remaining tasks to maximize your impact.",
			2)
	case rate >= 25:
		return e.newRecommendation(TypeFocus,
			"Time to focus",
			"Let's pick up the pace! Try the Pomodoro technique: 25 minutes of focused work, then a 5-minute break.",
			2)
	default:
		return e.newRecommendation(TypeFocus,
			"Fresh start opportunity",
			"Every moment is a chance to begin again. Choose one small task and complete it to build momentum.",
			3)
	}
}

var quotes = []string{
	"The way to get started is to quit talking and begin doing. - Walt Disney",
	"Don't let yesterday take up too much of today. - Will Rogers",
	"You learn more from failure than from success. Don't let it stop you. Failure builds character.",
	"If you are working on something that you really care about, you don't have to be pushed. The vision pulls you. - Steve Jobs",
	"The future depends on what you do today. - Mahatma Gandhi",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Progress, not perfection, is the goal.",
	"Small steps daily lead to big changes yearly.",
	"Your only limit is your mind.",
}

// MotivationalQuote returns one of the canned quotes.
func (e *Engine) MotivationalQuote() string {
	return quotes[e.pick(len(quotes))]
}
