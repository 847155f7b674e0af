package commands

import (
	"fmt"
	"strings"

	"github.com/hireline/screener-backend/internal/application/consts"
	"github.com/hireline/screener-backend/internal/infra/store"
)

// buildPrompt renders the extraction instructions for one resume. The model
// must return a single JSON object whose keys are exactly the CSV columns.
func buildPrompt(filename, resumeText string) string {
	if len(resumeText) > consts.PromptTextLimit {
		resumeText = resumeText[:consts.PromptTextLimit]
	}
	return fmt.Sprintf(`Analyze this resume and extract the following information. Be precise and realistic in your assessments.

IMPORTANT:
- Set resume_filename to: %s
- ALL field names must match EXACTLY (no extra spaces or typos)
- ALL required fields must be present - do not skip any fields
- Use empty string "" for missing links, not null
- Return VALID JSON only - no extra text, tags, or formatting
- Do not wrap the response in markdown code fences

RESUME TEXT:
%s

Please extract and evaluate:

1. Basic Information:
   - Full name (if not clear from text, extract from filename) - avoid special characters like apostrophes
   - Email address
   - GitHub and LinkedIn URLs (return empty string if not found)
   - Location (country and city)
   - Estimated job level based on experience and skills:
     * Intern: Student or recent grad with no professional experience, internships only
     * AMTS (Associate Member of Technical Staff): 0-2 years, entry level, recent grad
     * MTS (Member of Technical Staff): 2-4 years, mid-level individual contributor
     * SMTS (Senior Member of Technical Staff): 4-7 years, senior individual contributor
     * LMTS (Lead Member of Technical Staff): 7-10 years, tech lead, some management
     * PMTS (Principal Member of Technical Staff): 10+ years, principal engineer, architect

2. Experience (use decimal years like 2.5 when appropriate):
   - Years of programming/software development experience in professional settings (not including education)
   - Years of AI/ML experience (use 0 if none)
   - Years of cloud experience (AWS, Azure, GCP - use 0 if none)
   - Years of LLM/NLP experience (use 0 if none)

3. Education:
   - Total years of college education (4 for bachelors, 6 for masters, 8+ for PhD)
   - Highest degree obtained
   - Bachelor's university name (full name)
   - Graduate university name (Masters/PhD) - empty string if none
   - University tier for CS program (consider best university attended):
     * Tier 1: Top schools (MIT, Stanford, CMU, Berkeley, etc.)
     * Tier 2: Excellent schools (Purdue, UCLA, UCSD, Georgia Tech, etc.)
     * Tier 3: Good schools (state universities, well-known regionals)
     * Tier 4: Average schools
     * Tier 5: Below average or unknown
   - Overall world ranking of best university attended (estimate 1-2000+, use 0 if completely unknown)
     Examples Overall: MIT=2, Stanford=3, Harvard=1, Berkeley=14, Purdue=126, Arizona State=1100, Western Michigan=1200
   - CS program world ranking of best university attended (estimate 1-500+, use 0 if completely unknown)
     Examples CS: MIT=1, Stanford=2, Berkeley=3, Purdue=20, Arizona State=85, Western Michigan=200+
   - Bachelor's GPA (0.0-4.0 scale, use 0.0 if not mentioned)
   - Master's GPA (0.0-4.0 scale, use 0.0 if not mentioned or no master's degree)

4. Work Experience:
   - List ALL companies worked at, ordered from most recent to oldest (comma-separated)
   - Company tier based on most impressive employer:
     * Tier 1: FAANG, top tech companies (Google, Meta, Amazon, Microsoft, Apple, OpenAI, etc.)
     * Tier 2: Well-known tech companies, unicorns (Uber, Airbnb, Stripe, etc.)
     * Tier 3: Established non-tech companies, consulting firms
     * Tier 4: Startups, smaller companies
     * Tier 5: Unknown or no work experience
   - Number of CS-related internships

5. Skill Levels (1-5 scale, 1=none, 2=basic, 3=intermediate, 4=advanced, 5=expert):
   - JavaScript/TypeScript skill level
   - Python skill level
   - Cloud infrastructure skill level (AWS/Azure/GCP; 5 = certified, large-scale systems, infrastructure as code)
   - LLM/NLP skill level (3 = fine-tuning, RAG, prompt engineering; 5 = research, custom models, published papers)

6. Frontend Stack Skills (1-5 scale):
   - React.js strength (5 = expert with production experience)
   - TypeScript strength
   - Next.js strength
   - REST API design strength (5 = designed complex APIs)
   - Tailwind CSS strength
   - Git/GitHub strength (5 = advanced workflows)
   - Agile/Scrum strength (5 = led sprints)

   Also extract:
   - AWS services used (list specific services like Lambda, S3, etc.)
   - Database technologies used (PostgreSQL, MongoDB, DynamoDB, etc.)
   - AI developer tools used (Cursor, Claude Code, Copilot, etc.)
   - LLM APIs used (OpenAI, Anthropic, Gemini, etc.)

7. Work Style & Independence Indicators:
   - Startup experience strength (1=none, 5=founded or early employee)
   - Open source contribution strength (1=none, 5=maintainer)
   - Leadership strength (1=none, 5=managed teams)
   - Evidence of autonomous work (freelance, solo projects, etc.)

8. CS Fundamentals:
   - Algorithm/data structure strength (1-5, based on education, competitions, projects)
   - System design strength (1=none, 5=designed large systems)

9. EXPERIENCE-RELATIVE AGGREGATE SCORES (1-10 scale, ALL RELATIVE TO JOB LEVEL):
   IMPORTANT: Score these relative to what would be exceptional for someone at their experience level.
   An AMTS should be compared to other AMTS-level engineers, not to PMTS-level engineers.

   - Academic Strength (1-10): world rankings, GPA, degrees, research for their level.
     10 = top 5 world universities with high GPA; 8-9 = top 50; 6-7 = top 200 or strong GPA
     at a lower-ranked school; 4-5 = top 500-1000; 1-3 = ranked 1000+ or poor performance.
     Weight CS ranking more heavily than overall ranking.
   - CS Strength (1-10): algorithms, data structures, system design, competitions.
     10 = international competition winner; 6-7 = solid fundamentals for level; 1-3 = weak.
   - Industry Strength (1-10): quality of work experience for their level.
     10 = FAANG/top tech in exceptional roles; 6-7 = good experience; 1-3 = below average.
   - Full-Stack Strength (1-10): frontend + backend + cloud for their level.
     10 = production-level expertise across the stack; 1-3 = limited.
   - Open Source Strength (1-10): contributions and projects for their level.
     10 = major maintainer; 6-7 = some contributions and personal projects; 1-3 = none.
   - Accomplishments Strength (1-10): awards, publications, impact for their level.
     10 = founded company, published papers, major awards; 1-3 = few accomplishments.
   - Overall Score: average of the above 6 scores (round to 1 decimal)

10. Top 3 Accomplishments:
   - Extract the three most impressive accomplishments from the resume
   - Look for quantifiable impacts, awards, publications, leadership roles, etc.

Be accurate and conservative in your estimates. If information is not clear, make reasonable inferences based on the context.`, filename, resumeText)
}

// strictSuffix is appended on a validation retry: some models drop or rename
// fields unless given the literal list.
func strictSuffix() string {
	return fmt.Sprintf(`

CRITICAL: Your response must include ALL these exact field names:
%s

EXACT field count required: %d fields
DO NOT add extra spaces, typos, or skip any fields.
Return clean JSON without any extra tags or text.`,
		strings.Join(store.Columns, ", "), len(store.Columns))
}
