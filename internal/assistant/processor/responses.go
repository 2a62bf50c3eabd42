package processor

const greeting = "Hello! I'm your AI copilot for real estate success. I can help you analyze your leads, optimize campaigns, draft content, and provide strategic insights. What would you like to work on today?"

const analysisReply = `Based on your recent data, I can see your lead conversion rate has improved by 15% this quarter. Your email campaigns are performing particularly well with a 23% open rate. Here are some key insights:

• Your social media leads have the highest conversion rate at 32%
• Friday afternoon is your best time for lead follow-ups
• Luxury property inquiries convert 40% faster than standard listings

Would you like me to dive deeper into any of these areas?`

const emailReply = `Here's a professional follow-up email template:

**Subject: Your Luxury Property Inquiry - Exclusive Listings Available**

Hi [Lead Name],

Thank you for your interest in luxury properties in [Area]. I've curated a selection of exclusive listings that match your criteria:

• 4BR Modern Estate - $2.8M - Private showing available
• Waterfront Penthouse - $3.2M - Just listed
• Historic Mansion - $2.5M - Motivated seller

I'd love to schedule a private viewing this week. What day works best for you?

Best regards,
[Your Name]`

const tipsReply = `Here are 5 proven strategies to boost your conversion rate:

1. **Speed to Lead**: Respond within 5 minutes of inquiry (increases conversion by 400%)
2. **Personalized Follow-up**: Reference specific property details they viewed
3. **Value-First Approach**: Share market insights before pitching services
4. **Multi-Channel Engagement**: Combine email, phone, and text outreach
5. **Social Proof**: Share recent success stories and testimonials

Implement these gradually and track which has the biggest impact on your conversions.`

const marketReply = `Current market insights for your area:

📈 **Market Trends:**
• Average home prices up 8.2% YoY
• Inventory levels at 2.1 months (seller's market)
• Days on market: 18 days average

🏠 **Hot Segments:**
• First-time buyer programs in high demand
• Luxury market ($1M+) seeing 25% more activity
• Condos/townhomes outpacing single-family

💡 **Opportunities:**
• Focus on move-up buyers (strong equity positions)
• Highlight quick closing capabilities
• Emphasize local market expertise`

const helpReply = "I understand you're looking for help with your real estate business. I can assist with lead analysis, content creation, market insights, and strategic recommendations. Could you be more specific about what you'd like to focus on?"

var suggestedPrompts = []string{
	"Analyze my lead conversion trends for this quarter",
	"What's the best follow-up strategy for qualified leads?",
	"Generate a marketing email for new property listings",
	"Show me insights about my top performing campaigns",
	"Help me create a lead nurturing sequence",
	"What are the latest real estate market trends in my area?",
}

var quickActions = []QuickAction{
	{Label: "Analyze Performance", Prompt: "Give me a detailed analysis of my business performance this month"},
	{Label: "Draft Email", Prompt: "Help me write a follow-up email for a qualified lead interested in luxury properties"},
	{Label: "Strategy Tips", Prompt: "What are 5 actionable tips to improve my lead conversion rate?"},
	{Label: "Market Insights", Prompt: "What are the current market trends affecting real estate in my area?"},
}
