package report

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - Analysis Index</title>
<meta name="description" content="Multi-model AI analysis comparison for {{.Title}}">
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; line-height: 1.6; color: #333; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; padding: 2rem 1rem; }
.container { max-width: 1200px; margin: 0 auto; background: #fff; border-radius: 12px; box-shadow: 0 20px 60px rgba(0,0,0,0.3); overflow: hidden; }

/* Header */
header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #fff; padding: 3rem 2rem; text-align: center; }
header h1 { font-size: 2.5rem; margin-bottom: 0.5rem; font-weight: 700; }
header .subtitle { font-size: 1.2rem; opacity: 0.95; font-weight: 300; }

/* Intro */
.intro { padding: 2rem; background: #f8f9fa; border-bottom: 1px solid #dee2e6; }
.intro h2 { color: #667eea; margin-bottom: 1rem; font-size: 1.8rem; }
.intro p { font-size: 1.05rem; margin-bottom: 1rem; color: #555; line-height: 1.8; }
.project-meta { display: flex; gap: 2rem; margin-top: 1.5rem; flex-wrap: wrap; }
.meta-item { color: #666; font-size: 0.95rem; }
.meta-item strong { color: #667eea; }

/* Filters */
.filter-buttons { display: flex; justify-content: center; gap: 4px; margin-bottom: 1rem; flex-wrap: wrap; }
.filter-btn { padding: 4px 10px; border: 1px solid #ddd; border-radius: 4px; background: #fff; cursor: pointer; font-size: 12px; }
.filter-btn.active { background: #667eea; color: #fff; border-color: #667eea; }

/* Model cards */
.models-section { padding: 2rem; }
.models-section h2 { margin-bottom: 1rem; font-size: 2rem; text-align: center; }
.model-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 2rem; margin-top: 2rem; }
.model-card { border: 2px solid #e9ecef; border-radius: 12px; padding: 1.5rem; position: relative; transition: all 0.3s ease; }
.model-card:hover { transform: translateY(-5px); box-shadow: 0 10px 30px rgba(0,0,0,0.15); border-color: #667eea; }
.model-card.hidden { display: none; }
.badge { position: absolute; top: 1rem; right: 1rem; padding: 0.25rem 0.75rem; border-radius: 20px; font-size: 0.75rem; font-weight: 600; text-transform: uppercase; color: #fff; }
.model-card h3 { margin-bottom: 0.5rem; font-size: 1.4rem; padding-right: 100px; }
.provider { color: #6c757d; font-size: 0.85rem; margin-bottom: 1rem; font-family: "Courier New", monospace; }
.generated { color: #999; font-size: 0.8rem; }
.model-stats { display: grid; grid-template-columns: repeat(2, 1fr); gap: 0.75rem; margin: 1.5rem 0; }
.stat { text-align: center; padding: 0.75rem; background: #f8f9fa; border-radius: 6px; }
.stat-value { display: block; font-size: 1.2rem; font-weight: 700; color: #667eea; }
.stat-label { font-size: 0.75rem; color: #6c757d; text-transform: uppercase; }
.view-analysis-btn { display: block; padding: 0.75rem; background: #667eea; color: #fff; text-decoration: none; border-radius: 6px; text-align: center; font-weight: 600; }
.view-analysis-btn:hover { background: #5568d3; }

/* Modal */
.modal { display: none; position: fixed; z-index: 1000; inset: 0; background: rgba(0,0,0,0.8); }
.modal.active { display: block; }
.modal-content { position: relative; margin: 2% auto; width: 95%; height: 90%; background: #fff; border-radius: 12px; overflow: hidden; }
.modal-header { display: flex; justify-content: space-between; align-items: center; padding: 1rem 1.5rem; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #fff; }
.close-btn { background: rgba(255,255,255,0.2); border: none; color: #fff; font-size: 1.5rem; cursor: pointer; width: 36px; height: 36px; border-radius: 50%; }
.modal-body { width: 100%; height: calc(100% - 68px); border: none; }

footer { padding: 2rem; text-align: center; background: #f8f9fa; border-top: 1px solid #dee2e6; color: #6c757d; }

@media (max-width: 768px) {
  body { padding: 1rem 0.5rem; }
  header h1 { font-size: 1.8rem; }
  .model-grid { grid-template-columns: 1fr; }
  .project-meta { flex-direction: column; gap: 0.5rem; }
}
</style>
</head>
<body>
<div class="container">
  <header>
    <h1>{{.Title}}</h1>
    <p class="subtitle">Multi-Model AI Analysis Comparison</p>
  </header>

  <section class="intro">
    <h2>About This Analysis</h2>
    <p>{{.Description}}</p>
    <div class="project-meta">
      <div class="meta-item"><strong>Models Analyzed:</strong> {{.Count}}</div>
      <div class="meta-item"><strong>Generated:</strong> {{.GeneratedAt}}</div>
    </div>
  </section>

  <section class="models-section">
    <h2>Compare AI Model Analyses</h2>
    <div class="filter-buttons">
      <button class="filter-btn active" data-filter="all">All</button>
{{- range .Categories}}
      <button class="filter-btn" data-filter="{{.Name}}">{{.Label}}</button>
{{- end}}
    </div>

    <div class="model-grid">
{{- range .Entries}}
      <div class="model-card" data-category="{{.Category}}">
        <span class="badge" style="background: {{.Color}};">{{.Label}}</span>
        <h3>{{.DisplayName}}</h3>
{{- if .Provider}}
        <p class="provider">{{.Provider}}</p>
{{- end}}
{{- if .GeneratedAt}}
        <p class="generated">Generated {{.GeneratedAt}}</p>
{{- end}}
        <div class="model-stats">
          <div class="stat"><span class="stat-value">{{.Duration}}</span><span class="stat-label">Duration</span></div>
          <div class="stat"><span class="stat-value">{{.Sections}}</span><span class="stat-label">Reports</span></div>
        </div>
        <a class="view-analysis-btn" href="{{.Href}}" data-title="{{.DisplayName}}">View Analysis &rarr;</a>
      </div>
{{- end}}
    </div>
  </section>

  <footer>
    <p>{{.Count}} analyses indexed &bull; {{.GeneratedAt}}</p>
  </footer>
</div>

<div id="analysis-modal" class="modal">
  <div class="modal-content">
    <div class="modal-header">
      <h3 id="modal-title">Analysis Report</h3>
      <button class="close-btn" id="modal-close">&times;</button>
    </div>
    <iframe id="modal-frame" class="modal-body"></iframe>
  </div>
</div>

<script>
const modal = document.getElementById("analysis-modal");
const frame = document.getElementById("modal-frame");

function openModal(url, title) {
  frame.src = url;
  document.getElementById("modal-title").textContent = title || "Analysis Report";
  modal.classList.add("active");
  document.body.style.overflow = "hidden";
}

function closeModal() {
  modal.classList.remove("active");
  frame.src = "";
  document.body.style.overflow = "auto";
}

document.querySelectorAll(".view-analysis-btn").forEach(function(link) {
  link.addEventListener("click", function(e) {
    e.preventDefault();
    openModal(link.getAttribute("href"), link.dataset.title);
  });
});

document.getElementById("modal-close").addEventListener("click", closeModal);
modal.addEventListener("click", function(e) { if (e.target === modal) closeModal(); });
document.addEventListener("keydown", function(e) { if (e.key === "Escape") closeModal(); });

document.querySelectorAll(".filter-btn").forEach(function(btn) {
  btn.addEventListener("click", function() {
    document.querySelectorAll(".filter-btn").forEach(function(b) { b.classList.remove("active"); });
    btn.classList.add("active");
    const filter = btn.dataset.filter;
    document.querySelectorAll(".model-card").forEach(function(card) {
      card.classList.toggle("hidden", filter !== "all" && card.dataset.category !== filter);
    });
  });
});
</script>
</body>
</html>
`
