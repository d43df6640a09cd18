package prompt

const generationText = `You write test cases for a retrieval-augmented question answering system.

The source document is "{{.Filename}}".
Write exactly {{.Count}} test questions that put the retrieval system under pressure.

Requirements:

1. Anchor every question to this document. The system indexes many documents, so each
   question must carry names, products, dates, figures or terms that appear here and
   point back to this source. Prefer "What was Contoso's operating margin in FY23?" over
   "What was the margin?".

2. Mix the difficulty, roughly:
   - 30% direct lookups of facts stated plainly in the text
   - 30% inference questions that combine several passages
   - 20% edge cases: easily missed details, exact numbers, comparisons or trends
   - 20% questions just outside what the document covers, where a correct system
     should answer partially or say it does not know

3. Spread the questions across the sections of the document.

For each question give the question, the expected answer (write "Not in document" when
the text does not contain it), the page or section it comes from when known, and the
supporting quote when there is one.

Respond with JSON only, as an array:
[
  {
    "question": "...",
    "expected_answer": "...",
    "metadata": {
      "page": "...",
      "section": "...",
      "quote": "..."
    }
  }
]
If your output must be a JSON object, put the array under the key "questions".

Document text:
{{.Text}}
`

const comparisonText = `You write test cases for a retrieval-augmented question answering system.

You are given {{.DocumentCount}} documents. Write exactly {{.Count}} comparison questions that check
whether the system can relate information across them.

Documents:
{{range .Documents}}--- Document: {{.Filename}} ---
{{.Text}}

{{end}}
Requirements:

1. Every question must involve at least two of the documents or entities, for example
   "How did Contoso's Q1 revenue compare with Fabrikam's?" or "Which company grew faster?".

2. Mix the question types, roughly:
   - 30% direct differences between two values
   - 30% rankings (highest, lowest, first, last)
   - 20% trend comparisons
   - 20% harder synthesis where the figures are not directly comparable

3. Name the entities, products and periods explicitly.

For each question give the question, an expected answer that draws on every relevant
document, and metadata naming the documents used and where the data was found.

Respond with JSON only, as an array:
[
  {
    "question": "...",
    "expected_answer": "...",
    "metadata": {
      "documents": ["first.pdf", "second.pdf"],
      "comparison_type": "numeric|qualitative|ranking",
      "page": "pages in the source documents, when known",
      "section": "sections in the source documents, when known",
      "quote": "..."
    }
  }
]
If your output must be a JSON object, put the array under the key "questions".
`

const evaluationText = `You grade answers produced by a retrieval-augmented question answering system.

Question: {{.Question}}

Expected answer: {{.Expected}}

System answer: {{.Actual}}

Compare the system answer with the expected answer and pick one status:
- "Fully Correct": the answer is accurate and complete, even if worded differently.
- "Partially correct": the answer is incomplete or mixes correct and incorrect facts.
- "Wrongly answered": the answer is incorrect or irrelevant.
- "not answered": the answer says it does not know, or is empty.

Reply with the status text only.
`
