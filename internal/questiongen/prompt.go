package questiongen

import (
	"fmt"
	"strings"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/quiz"
)

const systemPrompt = `You are an expert tutor preparing students for the IDF Basmach (Mamram) entrance exams.

Rules:
- Language: Hebrew for questions, options and explanations. Technical terms and code may stay in English.
- Every question is multiple choice with exactly 4 options and exactly one correct option.
- Distractors should reflect typical mistakes (off-by-one loop counts, wrong operator precedence, misread conditions), not random values.
- Pseudo-code and algorithms questions MUST put the program or step listing in "code", as a block of code or a numbered list of instructions.
- Technical English questions put the English paragraph in "code" and ask a comprehension question about it.
- "explanation" is a detailed step-by-step walkthrough. When there is code, trace its execution (for example "in the first iteration A is 5, then...").
- Shape or diagram questions may use inline SVG: put the figure in "illustration" and, if the options are shapes, make all 4 options complete <svg>...</svg> elements and set "options_kind" to "svg". Keep SVG small (viewBox 0 0 100 100, no scripts, no external references).
- Use empty strings for "code" and "illustration" when they are not needed.
- Label each question "Easy", "Medium" or "Hard".
- Do not repeat a question within the batch.`

// topicPrompts describe what each topic's questions look like.
var topicPrompts = map[quiz.Topic]string{
	quiz.TopicPseudoCode: "Basmach 'Machvon Krav' (computer instructions). Focus on pseudo-code execution with syntax like 'Move 5 to A', 'Add B to A', 'Jump to line X if A > 0'. " +
		"Always provide the program in the code field. Ask for the final value of a variable or how many times a loop ran.",
	quiz.TopicLogicSeries: "Abstract reasoning: number series (e.g. 2, 4, 8, 16...), letter series, analogies and shape-logic matrices described in text or drawn in SVG. Focus on finding the pattern.",
	quiz.TopicAlgorithms: "Algorithmic thinking: flowcharts described in text, tracing values through a process, stack/queue logic, recursion, sorting and search steps, and basic time complexity. " +
		"Always provide a code-like sequence or step-by-step process in the code field.",
	quiz.TopicOOP: "Object-oriented programming: classes and objects, constructors, inheritance, polymorphism and method overriding, encapsulation, interfaces and abstract classes. " +
		"Prefer short Java- or C#-like snippets in the code field and ask what is printed or which statement is legal.",
	quiz.TopicEnglish: "Technical English comprehension. Provide a short paragraph about technology (coding, hardware, networks, AI) in the code field and ask a reading-comprehension or vocabulary question about it.",
	quiz.TopicSQL: "Relational databases and SQL: SELECT with WHERE, ORDER BY, GROUP BY and HAVING, JOINs, aggregate functions, keys and normalization. " +
		"Describe the tables and the query in the code field and ask for the result or the correct query.",
}

var difficultyPrompts = map[quiz.Difficulty]string{
	quiz.DifficultyEasy:   "All questions must be Easy: one concept, short traces, warm-up level.",
	quiz.DifficultyMedium: "All questions must be Medium: typical exam level.",
	quiz.DifficultyHard:   "All questions must be Hard: multi-step traces, nested loops or tricky edge cases, the hardest exam level.",
}

// buildTopicMessage renders the user message for a topic request.
func buildTopicMessage(topic quiz.Topic, count int, difficulty quiz.Difficulty) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple-choice questions.\n", count)
	fmt.Fprintf(&b, "Topic: %s\n", topicPrompts[topic])
	if d, ok := difficultyPrompts[difficulty]; ok {
		fmt.Fprintf(&b, "Difficulty: %s\n", d)
	} else {
		b.WriteString("Difficulty: mostly difficult questions, with a mix of tiers.\n")
	}
	b.WriteString("\nReturn JSON of the form {\"questions\": [...]}.")

	return b.String()
}

// buildTermMessage renders the user message for practicing one glossary
// term. The term's own text is included since the provider keeps no state.
func buildTermMessage(term glossary.Term, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple-choice questions that practice exactly one concept.\n", count)
	fmt.Fprintf(&b, "Concept: %s\n", term.Title)
	fmt.Fprintf(&b, "Definition: %s\n", term.Description)
	if term.Explanation != "" {
		fmt.Fprintf(&b, "Background: %s\n", term.Explanation)
	}
	if term.Code != "" {
		fmt.Fprintf(&b, "Example:\n%s\n", term.Code)
	}
	fmt.Fprintf(&b, "Exam area: %s\n", topicPrompts[term.Category.Topic()])
	b.WriteString("Every question must require understanding this concept; start easy and build up.\n")
	b.WriteString("\nReturn JSON of the form {\"questions\": [...]}.")

	return b.String()
}
