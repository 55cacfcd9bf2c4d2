package prompt

// Rubric is the evaluation template sent ahead of every screenshot
// description. The model is asked for the SCORE format below but its reply
// is not parsed or enforced.
const Rubric = `You are an expert UI/UX evaluator for academic purposes. I will provide you with a detailed description of a website interface screenshot, and you need to analyze it based on established HCI and UI/UX principles.

Evaluate the design using these specific criteria:

1. **Layout Clarity and Information Structure** (0-2 points)
2. **Navigation Visibility and Usability** (0-2 points)
3. **Visual Consistency** (0-2 points)
4. **Readability and Accessibility** (0-2 points)
5. **Overall Design Quality** (0-2 points)

**Scoring Scale:**
- 9–10: Outstanding design, adheres to all major UI/UX principles
- 7–8: Solid design with minor usability or consistency issues
- 5–6: Functional but with notable UI/UX flaws
- 3–4: Poorly structured or hard-to-navigate interface
- 1–2: Lacks basic usability and design coherence

**Required Output Format:**
SCORE: [X/10]

STRENGTHS:
- [List strengths]

WEAKNESSES:
- [List weaknesses]

DETAILED FEEDBACK:
[Paragraph feedback]

RECOMMENDATIONS:
1. [Improvement 1]
2. [Improvement 2]
3. [Improvement 3]

Now analyze the website interface based on this description:`

// Separator joins the rubric and the description
const Separator = "\n\n"

// Assemble returns the full model input for a description
func Assemble(description string) string {
	return Rubric + Separator + description
}
