package ai

import "net/url"

// VisionImageURL synthesizes a pollinations.ai image URL for a quest title.
// The service renders images straight from the prompt in the URL, so no API
// key or request is needed.
func VisionImageURL(title string) string {
	prompt := "cyberpunk futuristic vision board style art for goal: " + title +
		", cinematic lighting, high quality, 8k"
	return "https://image.pollinations.ai/prompt/" + url.PathEscape(prompt) +
		"?width=1200&height=400&nologo=true"
}
