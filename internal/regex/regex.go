package regex

import "regexp"

var (
	// Commit title patterns
	ConventionalPrefix = regexp.MustCompile(`^([A-Za-z]+)(\(([^)]+)\))?(!)?:\s*(.+)$`)
	ConventionalScoped = regexp.MustCompile(`^[A-Za-z]+\([^)]+\)(!)?:\s+.+$`)
	TrailingFullStop   = regexp.MustCompile(`(\w)\.\s*$`)
	TitleLabel         = regexp.MustCompile(`(?i)^title\s*[:：]\s*`)
	BodyLabel          = regexp.MustCompile(`(?i)^(body|description|impact|正文|描述|说明|影响)\s*[:：]\s*`)

	// Markdown cleanup
	FencedBlock   = regexp.MustCompile("(?s)```[a-zA-Z]*\n?(.*?)```")
	BulletMarker  = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)、])\s+`)
	OnlyPunct     = regexp.MustCompile(`^[\s\p{P}\p{S}]*$`)
	SpaceCollapse = regexp.MustCompile(`\s+`)

	// Category keyword heuristics (English and Chinese)
	FixKeywords      = regexp.MustCompile(`(?i)(fix|bug|hotfix|patch|defect|crash|修复|缺陷|漏洞|问题)`)
	FeatKeywords     = regexp.MustCompile(`(?i)(feat|feature|add|implement|introduce|新增|功能|特性)`)
	RefactorKeywords = regexp.MustCompile(`(?i)(refactor|restructure|reorganize|rewrite|cleanup|重构|整理)`)
	PerfKeywords     = regexp.MustCompile(`(?i)(perf|performance|optimi[sz]|speed|latency|性能|优化|提速)`)
)
