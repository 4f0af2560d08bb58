package prompt

import "strings"

// CommitCategory is the closed category vocabulary of the commit
// message contract
type CommitCategory string

const (
	CategoryFeat     CommitCategory = "FEAT"
	CategoryBugfix   CommitCategory = "BUGFIX"
	CategoryRefactor CommitCategory = "REFACTOR"
	CategoryChore    CommitCategory = "CHORE"
	CategoryCICD     CommitCategory = "CICD"
	CategoryEtc      CommitCategory = "ETC"
)

// CommitCategories returns the vocabulary in its canonical order
func CommitCategories() []CommitCategory {
	return []CommitCategory{
		CategoryFeat, CategoryBugfix, CategoryRefactor,
		CategoryChore, CategoryCICD, CategoryEtc,
	}
}

// categoryList renders the vocabulary for use inside instruction text
func categoryList() string {
	categories := CommitCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Evidence block labels
const (
	labelStagedChanges   = "STAGED CHANGES"
	labelRecentCommits   = "RECENT COMMITS"
	labelOriginalMessage = "ORIGINAL MESSAGE"
)

// Role sentences, one per artifact kind
const (
	roleCommit = "You are a meticulous software engineer writing a commit message for the change described below."

	roleTicket = "You are a software engineer writing an issue-tracker ticket for the work described below."

	roleChangeRequest = "You are a software engineer writing a change-request description for the work described below."

	roleConsistencyFix = "You are a formatting assistant that normalizes an existing commit message without changing its content."
)

// commitInstructions specifies the commit message contract with a
// worked example
const commitInstructions = `Write a single commit message for the changes above.

Required shape:
CATEGORY:[TICKET-ID]: <concise summary>   (when a ticket reference is listed below)
CATEGORY: <concise summary>               (when no ticket reference is available)

CATEGORY must be one of: %s.
The summary starts with an uppercase letter and states what changed.

Worked example:
FEAT:[ABC-42]: Add session timeout to the login flow

Output only the commit message itself. No preamble, no explanation, no code fences.`

// ticketInstructions specifies the ticket description contract
const ticketInstructions = `Write an issue-tracker ticket describing the work above.

Required shape, exactly two parts:
Title: <one line naming the change>
Description: <a few sentences describing what changed and why>

Worked example:
Title: Add session timeout to the login flow
Description: Sessions currently stay valid forever. This change expires them after 30 minutes of inactivity and redirects to the login page.

Output only the title and description. No preamble, no explanation.`

// changeRequestInstructions specifies the change-request contract; the
// title carries the commit category prefix
const changeRequestInstructions = `Write a change-request description for the work above.

Required shape:
Title: CATEGORY:[TICKET-ID]: <one line naming the change>
Description: <a few sentences describing what changed and why>

CATEGORY must be one of: %s.
If no ticket reference is listed below, omit the bracket segment entirely.

Worked example:
Title: BUGFIX:[OPS-7]: Stop the retry loop from hammering the backend
Description: The retry loop had no backoff and retried failed requests immediately. This change adds exponential backoff capped at eight seconds.

Output only the title and description lines. No preamble, no explanation.`

// consistencyFixInstructions reformats a rejected message without
// regenerating it
const consistencyFixInstructions = `Reformat the original message above into this exact shape:
CATEGORY:[TICKET-ID]: <summary>

Rules:
- Do not rewrite or regenerate the content; only reformat it.
- Preserve the internal structure of the original message (bullet points, line breaks).
- CATEGORY must be one of: %s.
- If no ticket reference is listed below, infer one from the branch name; if none can be inferred, omit the bracket segment.

Output only the reformatted message. No preamble, no explanation.`
