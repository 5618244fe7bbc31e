// Package prompt derives system prompts and sampling parameters from content
// metadata. Every lookup has a generic default, so no input combination fails.
package prompt

import "fmt"

const (
	DefaultContentType = "blog-post"
	DefaultTone        = "professional"
	DefaultLength      = "medium"
)

const closingDirective = "Always aim for content that is coherent, engaging, and free of repetition. " +
	"Use concrete examples and specific details rather than vague statements. " +
	"Avoid unnecessary fillers and focus on delivering value in every sentence."

// SystemPrompt assembles a system prompt from four fixed-order parts: base role
// by content type, tone instructions, length instructions with a word-count
// range, and structural instructions. Pure function.
func SystemPrompt(contentType, tone, length string) string {
	if contentType == "" {
		contentType = DefaultContentType
	}
	if tone == "" {
		tone = DefaultTone
	}
	if length == "" {
		length = DefaultLength
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n\n%s",
		basePrompt(contentType),
		toneInstructions(tone),
		lengthInstructions(length, contentType),
		structureInstructions(contentType),
		closingDirective,
	)
}

// ClampTemperature applies the per-content-type sampling policy: creative copy
// works best in a bounded band, factual copy needs a low ceiling.
func ClampTemperature(contentType string, t float64) float64 {
	switch contentType {
	case "ad-copy", "social-media":
		if t < 0.4 {
			return 0.4
		}
		if t > 0.8 {
			return 0.8
		}
		return t
	case "product-description":
		if t > 0.5 {
			return 0.5
		}
		return t
	default:
		return t
	}
}

var basePrompts = map[string]string{
	"blog-post": "You are an expert content writer specializing in creating engaging, informative blog posts. " +
		"Your writing is clear, well-researched, and optimized for both readers and search engines. " +
		"You create content that keeps readers engaged from introduction to conclusion, using proper subheadings, paragraphs, and a logical flow of ideas.",
	"social-media": "You are a skilled social media content creator who understands how to craft attention-grabbing, shareable posts that generate engagement. " +
		"You know how to convey impactful messages concisely while incorporating relevant calls-to-action. " +
		"You understand the importance of creating content that sparks conversation and encourages sharing.",
	"email": "You are an experienced email marketing specialist who excels at creating compelling email content that drives action. " +
		"You understand how to craft subject lines that increase open rates and content that boosts click-through rates. " +
		"Your emails are personable, direct, and focused on delivering clear value to the recipient.",
	"ad-copy": "You are an advertising copywriter with expertise in creating persuasive, concise, and compelling ad copy that converts. " +
		"You excel at highlighting benefits rather than features, creating a sense of urgency, and incorporating strong calls-to-action. " +
		"Your copy is designed to grab attention quickly and drive specific actions.",
	"product-description": "You are a product description specialist who knows how to showcase products in their best light. " +
		"You excel at highlighting key features and, more importantly, translating those features into benefits that resonate with customers. " +
		"Your descriptions are vivid, specific, and designed to answer customer questions while addressing potential objections.",
}

func basePrompt(contentType string) string {
	if p, ok := basePrompts[contentType]; ok {
		return p
	}
	return "You are a skilled content writer who creates engaging, accurate, and well-structured content. " +
		"You adapt your writing style to suit different purposes and audiences, always ensuring your content is valuable, informative, and appropriate for its intended use."
}

var tonePrompts = map[string]string{
	"professional": "Write in a professional tone that conveys expertise and authority. " +
		"Use clear, precise language, maintain a formal structure, and avoid colloquialisms. " +
		"Focus on delivering factual, balanced information supported by evidence when applicable. " +
		"Your content should be trustworthy and credible, suitable for a business or academic context.",
	"casual": "Write in a casual, conversational tone as if you're talking to a friend. " +
		"Use relaxed language, including contractions and occasional colloquialisms. " +
		"Your writing should feel natural and accessible, avoiding overly complex terms when simpler ones will do. " +
		"Feel free to use the second person (\"you\") to directly address the reader.",
	"friendly": "Write in a warm, friendly tone that makes readers feel welcome and valued. " +
		"Use supportive, positive language that builds connection. " +
		"Balance professionalism with approachability, and emphasize shared experiences or challenges. " +
		"Your content should feel like helpful advice from someone who genuinely cares about the reader's success or wellbeing.",
	"enthusiastic": "Write with contagious enthusiasm and energy that excites readers about the topic. " +
		"Use dynamic, vibrant language with appropriate emphasis (but avoid excessive exclamation marks). " +
		"Highlight the most exciting aspects of your subject matter, and convey genuine passion for the topic. " +
		"Your writing should make readers feel motivated and inspired to take action.",
	"humorous": "Write with appropriate humor and wit to entertain while informing. " +
		"Use clever wordplay, relevant analogies, or light-hearted observations that add personality to your content. " +
		"Maintain a balance so the humor enhances rather than distracts from your main message. " +
		"Your content should bring a smile while still providing value and respecting the reader's intelligence.",
}

func toneInstructions(tone string) string {
	if p, ok := tonePrompts[tone]; ok {
		return p
	}
	return "Adapt your tone to be appropriate for the content and audience, striking a balance between professionalism and approachability. " +
		"Use clear, straightforward language that resonates with readers and conveys information effectively."
}

func lengthInstructions(length, contentType string) string {
	wordCount := wordCountRange(length, contentType)

	switch length {
	case "short":
		return fmt.Sprintf("Create concise, focused content of approximately %s. "+
			"Every word should serve a purpose - be direct, eliminate fluff, and prioritize only the most essential information. "+
			"Focus on your main points and strongest arguments, using efficient language to maximize impact within a limited space.", wordCount)
	case "medium":
		return fmt.Sprintf("Create moderately detailed content of approximately %s. "+
			"Balance thoroughness with conciseness - provide enough detail to fully explain concepts, but keep your language efficient. "+
			"Include supporting points and explanations while maintaining focus on your core message.", wordCount)
	case "long":
		return fmt.Sprintf("Create comprehensive, in-depth content of approximately %s. "+
			"Thoroughly explore your topic with detailed explanations, multiple examples, and supporting evidence. "+
			"Cover various angles and perspectives, anticipate and address potential questions, and create authoritative content that serves as a valuable resource.", wordCount)
	default:
		return "Create content of appropriate length for the topic and purpose. " +
			"Balance detail with readability, including sufficient information to fully communicate your message while keeping the reader engaged throughout."
	}
}

// wordCountRanges maps contentType then length to a target range.
var wordCountRanges = map[string]map[string]string{
	"blog-post": {
		"short":  "300-500 words",
		"medium": "700-1000 words",
		"long":   "1500-2000 words",
	},
	"social-media": {
		"short":  "50-80 words",
		"medium": "100-150 words",
		"long":   "200-300 words",
	},
	"email": {
		"short":  "100-200 words",
		"medium": "300-500 words",
		"long":   "600-800 words",
	},
	"ad-copy": {
		"short":  "30-50 words",
		"medium": "75-125 words",
		"long":   "150-250 words",
	},
	"product-description": {
		"short":  "75-150 words",
		"medium": "200-350 words",
		"long":   "400-600 words",
	},
}

var genericWordCounts = map[string]string{
	"short":  "100-300 words",
	"medium": "300-600 words",
	"long":   "600-1000 words",
}

func wordCountRange(length, contentType string) string {
	if byLength, ok := wordCountRanges[contentType]; ok {
		if wc, ok := byLength[length]; ok {
			return wc
		}
	} else if wc, ok := genericWordCounts[length]; ok {
		return wc
	}
	return "an appropriate length for this type of content"
}

var structurePrompts = map[string]string{
	"blog-post": `Structure your blog post with:
1. An attention-grabbing introduction that clearly presents the topic and why it matters
2. Logical subheadings that divide the content into scannable sections
3. Well-developed paragraphs with topic sentences and supporting details
4. Practical examples or data points that illustrate key concepts
5. A strong conclusion that summarizes main points and provides next steps or final thoughts`,
	"social-media": `Structure your social media post with:
1. A hook or attention-grabber in the first line to stop scrollers
2. Clear, concise messaging that gets straight to the point
3. A specific value proposition or key takeaway
4. Authentic, conversational language appropriate for the platform
5. A clear call-to-action telling readers what to do next`,
	"email": `Structure your email with:
1. A compelling subject line that creates interest or promises value
2. A personalized greeting when appropriate
3. A strong opening that immediately communicates relevance to the recipient
4. Scannable body content with short paragraphs and bullet points when appropriate
5. A clear, specific call-to-action that stands out
6. A professional signature or closing`,
	"ad-copy": `Structure your ad copy with:
1. A headline that captures attention and communicates a clear benefit
2. Supporting copy that builds on the headline's promise
3. Specific, concrete language that helps readers visualize outcomes
4. Proof elements such as statistics, testimonials, or trust indicators when applicable
5. A strong, urgent call-to-action that prompts immediate response`,
	"product-description": `Structure your product description with:
1. An engaging opening that highlights the product's primary benefit or unique selling proposition
2. Key features translated into benefits that matter to the customer
3. Specific details about materials, dimensions, functionality, or specifications as relevant
4. Language that appeals to senses or emotions when appropriate
5. Information that addresses common questions or objections
6. A call-to-action encouraging the next step in the purchasing process`,
}

func structureInstructions(contentType string) string {
	if p, ok := structurePrompts[contentType]; ok {
		return p
	}
	return "Structure your content logically with a clear beginning, middle, and end. " +
		"Use appropriate formatting elements like paragraphs, headings, and lists to make your content scannable and accessible. " +
		"Ensure each section flows naturally to the next, creating a cohesive piece that guides the reader through your message."
}
