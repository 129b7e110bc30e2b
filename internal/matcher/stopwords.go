package matcher

// vectorStopwords is the English stop-word list applied before n-gram
// extraction during vectorization.
var vectorStopwords = toSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "as", "at", "be", "became", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "could", "did", "do", "does", "doing", "down", "during",
	"each", "either", "else", "ever", "every", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "however", "i", "if", "in",
	"into", "is", "it", "its", "itself", "just", "may", "me", "might",
	"more", "most", "must", "my", "myself", "neither", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "otherwise",
	"our", "ours", "ourselves", "out", "over", "own", "per", "same",
	"shall", "she", "should", "since", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there",
	"therefore", "these", "they", "this", "those", "through", "thus", "to",
	"too", "under", "until", "up", "upon", "very", "was", "we", "were",
	"what", "when", "where", "whether", "which", "while", "who", "whom",
	"whose", "why", "will", "with", "within", "without", "would", "you",
	"your", "yours", "yourself", "yourselves",
})

// explainStopwords is the much smaller list used when extracting
// matched keywords for human-facing explanations. Kept deliberately
// minimal so explanations retain domain words the vectorizer list
// would strip.
var explainStopwords = toSet([]string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by",
})

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
